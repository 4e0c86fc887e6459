package http

import (
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/generated/servers"
)

func toAuthResponse(session commands.Session) servers.AuthResponse {
	return servers.AuthResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      toUser(session.User),
	}
}

// toUser only fills the role specific fields of the user's own role.
func toUser(u *user.User) servers.User {
	out := servers.User{
		Id:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
		Type:  u.Role().String(),
	}

	switch u.Role() {
	case user.RoleRestaurant:
		name := u.RestaurantName()
		out.RestaurantName = &name
	case user.RoleDelivery:
		studentID, available := u.StudentID(), u.IsAvailable()
		out.StudentId = &studentID
		out.IsAvailable = &available
	case user.RoleCustomer:
	}

	return out
}

func toOrder(o *order.Order) servers.Order {
	items := o.Items()
	lines := make([]servers.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, servers.OrderItem{
			ItemId:    it.ItemID(),
			Name:      it.Name(),
			UnitPrice: it.UnitPrice().Float(),
			Quantity:  it.Quantity(),
		})
	}

	out := servers.Order{
		Id:                o.ID().Bytes(),
		CustomerId:        o.CustomerID(),
		Items:             lines,
		Total:             o.Total().Float(),
		Status:            servers.OrderStatus(o.Status().String()),
		DeliveryAddress:   o.DeliveryAddress(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		EstimatedDelivery: o.EstimatedDelivery(),
	}
	if instructions := o.DeliveryInstructions(); instructions != "" {
		out.DeliveryInstructions = &instructions
	}
	if a := o.Assignee(); a != nil {
		out.AssignedDelivery = &servers.Assignee{Id: a.ID(), Name: a.Name(), StudentId: a.StudentID()}
	}
	return out
}

func toOrderList(orders []*order.Order) servers.OrderList {
	out := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return servers.OrderList{Success: true, Count: len(out), Orders: out}
}
