// Package orderrepo persists order aggregates with gorm. Orders and their items
// live in two tables; the in-memory store remains the authority at runtime and
// this archive is only written behind it and read at startup.
package orderrepo

import (
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID           string    `gorm:"index;not null"`
	Status               string    `gorm:"index;not null"`
	Total                int64     `gorm:"not null"`
	DeliveryAddress      string    `gorm:"not null"`
	DeliveryInstructions string
	AssigneeID           *string   `gorm:"index"`
	AssigneeName         *string
	AssigneeStudentID    *string
	Items                []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
	EstimatedDelivery    time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ItemID    string    `gorm:"not null"`
	Name      string    `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for idx, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   o.ID().Bytes(),
			Position:  idx,
			ItemID:    item.ItemID(),
			Name:      item.Name(),
			UnitPrice: int64(item.UnitPrice()),
			Quantity:  item.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:                   o.ID().Bytes(),
		CustomerID:           o.CustomerID(),
		Status:               o.Status().String(),
		Total:                int64(o.Total()),
		DeliveryAddress:      o.DeliveryAddress(),
		DeliveryInstructions: o.DeliveryInstructions(),
		Items:                items,
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
		EstimatedDelivery:    o.EstimatedDelivery(),
	}
	// Assignee columns stay NULL while the order is unassigned.
	if a := o.Assignee(); a != nil {
		id, name, studentID := a.ID(), a.Name(), a.StudentID()
		dto.AssigneeID, dto.AssigneeName, dto.AssigneeStudentID = &id, &name, &studentID
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ItemID, itemDTO.Name, kernel.Money(itemDTO.UnitPrice), itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var assignee *order.Assignee
	if dto.AssigneeID != nil {
		a, assigneeErr := order.NewAssignee(*dto.AssigneeID, deref(dto.AssigneeName), deref(dto.AssigneeStudentID))
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assignee = &a
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                   id,
		CustomerID:           dto.CustomerID,
		Items:                items,
		Total:                kernel.Money(dto.Total),
		Status:               status,
		DeliveryAddress:      dto.DeliveryAddress,
		DeliveryInstructions: dto.DeliveryInstructions,
		Assignee:             assignee,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
		EstimatedDelivery:    dto.EstimatedDelivery,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
