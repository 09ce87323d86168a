// Package http exposes the checkout and order endpoints over echo.
// Authentication lives in the surrounding application; requests arrive with
// trusted X-User-Id and X-User-Role headers and this layer only maps them to
// a requester identity.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
	roleAdmin      = "admin"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		listOrdersHandler:        listOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/checkout", s.Checkout)
	api.GET("/orders", s.GetUserOrders)
	api.GET("/orders/:id", s.GetOrder)

	admin := api.Group("/admin")
	admin.GET("/orders", s.ListOrders)
	admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Checkout handles POST /api/v1/checkout - converts the requester's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCheckoutCommand(
		requester.UserID,
		toAddressInput(request.BillingInfo),
		toAddressInput(request.ShippingInfo),
		toPaymentInput(request.PaymentInfo),
		request.UseShippingAsBilling,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	createdOrder, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		Message: "Order placed successfully",
		Order: OrderSummary{
			ID:          createdOrder.ID().String(),
			OrderNumber: createdOrder.OrderNumber(),
			Subtotal:    createdOrder.Totals().Subtotal.String(),
			TaxAmount:   createdOrder.Totals().TaxAmount.String(),
			TotalAmount: createdOrder.Totals().TotalAmount.String(),
			Status:      createdOrder.Status().String(),
			CreatedAt:   createdOrder.CreatedAt(),
		},
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches one order visible to the requester.
func (s *Server) GetOrder(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewObjectNotFoundError("order", ctx.Param("id")))
	}

	query, err := queries.NewGetOrderQuery(orderID, requester)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(response))
}

// GetUserOrders handles GET /api/v1/orders - the requester's order history.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(requester.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	responses, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	views := make([]OrderView, len(responses))
	for i, response := range responses {
		views[i] = toOrderView(response)
	}
	return ctx.JSON(http.StatusOK, views)
}

// ListOrders handles GET /api/v1/admin/orders - the paginated back-office list.
func (s *Server) ListOrders(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	page := intQueryParam(ctx, "page")
	limit := intQueryParam(ctx, "limit")

	query, err := queries.NewListOrdersQuery(requester, ctx.QueryParam("status"), page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	pageResponse, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	views := make([]OrderView, len(pageResponse.Orders))
	for i, response := range pageResponse.Orders {
		views[i] = toOrderView(response)
	}
	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders:      views,
		TotalOrders: pageResponse.TotalOrders,
		TotalPages:  pageResponse.TotalPages,
		CurrentPage: pageResponse.CurrentPage,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !requester.IsAdmin {
		return writeError(ctx, errs.NewAuthorizationError("update order status"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewObjectNotFoundError("order", ctx.Param("id")))
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, request.AdminNotes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// requesterFrom builds the requester identity from the trusted identity
// headers. A request without a parseable X-User-Id cannot be authorized at all.
func requesterFrom(ctx echo.Context) (queries.Requester, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return queries.Requester{}, errs.NewAuthorizationError("missing or invalid user identity")
	}

	return queries.Requester{
		UserID:  userID,
		IsAdmin: ctx.Request().Header.Get(headerUserRole) == roleAdmin,
	}, nil
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognized is
// an internal error: the detail goes to the log, a generic message outward.
func writeError(ctx echo.Context, err error) error {
	var inventoryErr *errs.InventoryError
	if errors.As(err, &inventoryErr) {
		available := inventoryErr.Available
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:      http.StatusBadRequest,
			Message:   err.Error(),
			Available: &available,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPaymentRejected),
		errors.Is(err, errs.ErrCartEmpty),
		errors.Is(err, errs.ErrVehicleUnavailable):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrAuthorization):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	default:
		ctx.Logger().Errorf("internal error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func toAddressInput(payload *AddressPayload) commands.AddressInput {
	if payload == nil {
		return commands.AddressInput{}
	}
	return commands.AddressInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Street:    payload.Street,
		City:      payload.City,
		Province:  payload.Province,
		Country:   payload.Country,
		Zip:       payload.Zip,
	}
}

func toPaymentInput(payload *PaymentPayload) commands.PaymentInput {
	if payload == nil {
		return commands.PaymentInput{}
	}
	return commands.PaymentInput{
		CardNumber: payload.CardNumber,
		CVV:        payload.CVV,
		Expiry:     payload.Expiry,
	}
}

func toOrderView(response queries.OrderResponse) OrderView {
	items := make([]OrderItemView, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItemView{
			VehicleID:    item.VehicleID.String(),
			VehicleBrand: item.VehicleBrand,
			VehicleModel: item.VehicleModel,
			VehicleYear:  item.VehicleYear,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.StringFixed(2),
			TotalPrice:   item.TotalPrice.StringFixed(2),
		}
	}

	return OrderView{
		ID:           response.ID.String(),
		OrderNumber:  response.OrderNumber,
		UserID:       response.UserID.String(),
		Status:       response.Status,
		Subtotal:     response.Subtotal.StringFixed(2),
		TaxAmount:    response.TaxAmount.StringFixed(2),
		TotalAmount:  response.TotalAmount.StringFixed(2),
		CardType:     response.CardType,
		CardLastFour: response.CardLastFour,
		AdminNotes:   response.AdminNotes,
		ProcessedAt:  response.ProcessedAt,
		ShippedAt:    response.ShippedAt,
		DeliveredAt:  response.DeliveredAt,
		CreatedAt:    response.CreatedAt,
		Items:        items,
	}
}
