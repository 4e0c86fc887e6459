package events

import (
	"time"

	"orderhub/internal/core/domain/model/order"
)

// OrderView is the JSON form of an order shared by the REST responses and order:new.
type OrderView struct {
	ID                   string        `json:"id"`
	CustomerID           string        `json:"customerId"`
	Items                []ItemView    `json:"items"`
	Total                float64       `json:"total"`
	Status               string        `json:"status"`
	DeliveryAddress      string        `json:"deliveryAddress"`
	DeliveryInstructions string        `json:"deliveryInstructions,omitempty"`
	AssignedDelivery     *AssigneeView `json:"assignedDelivery"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
	EstimatedDelivery    time.Time     `json:"estimatedDelivery"`
}

type ItemView struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type AssigneeView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
}

// NewOrderView converts an order aggregate.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{
			ItemID:    it.ItemID(),
			Name:      it.Name(),
			UnitPrice: it.UnitPrice().Float(),
			Quantity:  it.Quantity(),
		})
	}

	var assignee *AssigneeView
	if a := o.Assignee(); a != nil {
		assignee = &AssigneeView{ID: a.ID(), Name: a.Name(), StudentID: a.StudentID()}
	}

	return OrderView{
		ID:                   o.ID().String(),
		CustomerID:           o.CustomerID(),
		Items:                views,
		Total:                o.Total().Float(),
		Status:               o.Status().String(),
		DeliveryAddress:      o.DeliveryAddress(),
		DeliveryInstructions: o.DeliveryInstructions(),
		AssignedDelivery:     assignee,
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
		EstimatedDelivery:    o.EstimatedDelivery(),
	}
}

// NewOrderViews converts a list, never returning nil.
func NewOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
