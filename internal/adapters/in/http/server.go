package http

import (
	"net/http"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerHandler        commands.RegisterUserCommandHandler
	loginHandler           commands.LoginCommandHandler
	setAvailabilityHandler commands.SetAvailabilityCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	assignDeliveryHandler  commands.AssignDeliveryCommandHandler

	// Query handlers
	getMeHandler      queries.GetMeQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// UseCases groups the handlers a Server needs.
type UseCases struct {
	Register        commands.RegisterUserCommandHandler
	Login           commands.LoginCommandHandler
	SetAvailability commands.SetAvailabilityCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	ChangeStatus    commands.ChangeOrderStatusCommandHandler
	AssignDelivery  commands.AssignDeliveryCommandHandler

	GetMe      queries.GetMeQueryHandler
	GetOrder   queries.GetOrderQueryHandler
	ListOrders queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(useCases UseCases) *Server {
	return &Server{
		registerHandler:        useCases.Register,
		loginHandler:           useCases.Login,
		setAvailabilityHandler: useCases.SetAvailability,
		createOrderHandler:     useCases.CreateOrder,
		changeStatusHandler:    useCases.ChangeStatus,
		assignDeliveryHandler:  useCases.AssignDelivery,
		getMeHandler:           useCases.GetMe,
		getOrderHandler:        useCases.GetOrder,
		listOrdersHandler:      useCases.ListOrders,
	}
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var body servers.RegisterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewRegisterUserCommand(commands.RegisterUserInput{
		Name:           body.Name,
		Email:          body.Email,
		Password:       body.Password,
		Role:           string(body.Type),
		RestaurantName: deref(body.RestaurantName),
		StudentID:      deref(body.StudentId),
		IsAvailable:    body.IsAvailable != nil && *body.IsAvailable,
	})
	if err != nil {
		return err
	}

	session, err := s.registerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toAuthResponse(session))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return err
	}

	session, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAuthResponse(session))
}

// GetMe handles GET /api/auth/me.
func (s *Server) GetMe(ctx echo.Context) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMeQuery(actor)
	if err != nil {
		return err
	}

	u, err := s.getMeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.UserResponse{Success: true, User: toUser(u)})
}

// SetAvailability handles PUT /api/auth/availability.
func (s *Server) SetAvailability(ctx echo.Context) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.SetAvailabilityJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewSetAvailabilityCommand(actor, &body.IsAvailable)
	if err != nil {
		return err
	}

	u, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	message := "Availability disabled"
	if u.IsAvailable() {
		message = "Availability enabled"
	}
	return ctx.JSON(http.StatusOK, servers.AvailabilityResponse{
		Success:     true,
		IsAvailable: u.IsAvailable(),
		Message:     message,
	})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, commands.ItemInput{
			ItemID:    it.ItemId,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actor,
		items,
		&body.Total,
		body.DeliveryAddress,
		deref(body.DeliveryInstructions),
	)
	if err != nil {
		return err
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.OrderResponse{Success: true, Order: toOrder(o)})
}

// ListOrders handles GET /api/orders - every order, restaurant staff only.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return err
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// ListMyOrders handles GET /api/orders/myorders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyOrdersQuery(actor)
	if err != nil {
		return err
	}

	orders, err := s.listOrdersHandler.HandleMine(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// ListPendingOrders handles GET /api/orders/pending.
func (s *Server) ListPendingOrders(ctx echo.Context) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListPendingOrdersQuery(actor)
	if err != nil {
		return err
	}

	orders, err := s.listOrdersHandler.HandlePending(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return err
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{Success: true, Order: toOrder(o)})
}

// ChangeOrderStatus handles PUT /api/orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id servers.OrderID) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, body.Status, actor)
	if err != nil {
		return err
	}

	o, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{Success: true, Order: toOrder(o)})
}

// AssignDelivery handles PUT /api/orders/{id}/assign.
func (s *Server) AssignDelivery(ctx echo.Context, id servers.OrderID) error {
	actor, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, actor)
	if err != nil {
		return err
	}

	o, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response := servers.AssignResponse{Success: true, Order: toOrder(o)}
	if a := o.Assignee(); a != nil {
		response.AssignedDeliveryPerson = servers.Assignee{Id: a.ID(), Name: a.Name(), StudentId: a.StudentID()}
	}
	return ctx.JSON(http.StatusOK, response)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
