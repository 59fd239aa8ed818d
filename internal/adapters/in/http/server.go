package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the commerce API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler            commands.PlaceOrderCommandHandler
	changeOrderStatusHandler     commands.ChangeOrderStatusCommandHandler
	recordPaymentHandler         commands.RecordPaymentCommandHandler
	refundOrderHandler           commands.RefundOrderCommandHandler
	updateDeliveryStatusHandler  commands.UpdateDeliveryStatusCommandHandler
	assignDeliveryPartnerHandler commands.AssignDeliveryPartnerCommandHandler
	collectCODHandler            commands.CollectCODCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getRefundHistoryHandler    queries.GetRefundHistoryQueryHandler
	getDeliveryProgressHandler queries.GetDeliveryProgressQueryHandler
	getUncollectedCODHandler   queries.GetUncollectedCODQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	assignDeliveryPartnerHandler commands.AssignDeliveryPartnerCommandHandler,
	collectCODHandler commands.CollectCODCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRefundHistoryHandler queries.GetRefundHistoryQueryHandler,
	getDeliveryProgressHandler queries.GetDeliveryProgressQueryHandler,
	getUncollectedCODHandler queries.GetUncollectedCODQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:            placeOrderHandler,
		changeOrderStatusHandler:     changeOrderStatusHandler,
		recordPaymentHandler:         recordPaymentHandler,
		refundOrderHandler:           refundOrderHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		assignDeliveryPartnerHandler: assignDeliveryPartnerHandler,
		collectCODHandler:            collectCODHandler,
		getOrderHandler:              getOrderHandler,
		getRefundHistoryHandler:      getRefundHistoryHandler,
		getDeliveryProgressHandler:   getDeliveryProgressHandler,
		getUncollectedCODHandler:     getUncollectedCODHandler,
	}
}

// RegisterRoutes binds all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/payments", s.RecordPayment)
	api.POST("/orders/:id/refunds", s.RefundOrder)
	api.GET("/orders/:id/refunds", s.GetRefundHistory)
	api.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:id/assign", s.AssignDeliveryPartner)
	api.POST("/deliveries/:id/collect-cod", s.CollectCOD)
	api.GET("/deliveries/:id/progress", s.GetDeliveryProgress)
	api.GET("/deliveries/uncollected-cod", s.GetUncollectedCOD)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := order.NewAddress(
		req.Address.Name, req.Address.Phone,
		req.Address.Line1, req.Address.Line2,
		req.Address.City, req.Address.Postcode,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]commands.OrderLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = commands.OrderLine{SKU: line.SKU, Quantity: line.Quantity}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, lines, req.CouponCode, address, method)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves an order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(response))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:id/payments - records a gateway
// payment outcome for an order.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := order.PaymentMethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, amount, method, req.Succeeded)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/orders/:id/refunds - records a refund
// against an order's captured amount.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req RefundOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRefundOrderCommand(orderID, amount, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRefundHistory handles GET /api/v1/orders/:id/refunds - lists refunds
// and the remaining refundable amount.
func (s *Server) GetRefundHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetRefundHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getRefundHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRefundHistory(response))
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status - records a
// partner tracking scan.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDeliveryPartner handles POST /api/v1/deliveries/:id/assign - hands a
// delivery to a logistics partner.
func (s *Server) AssignDeliveryPartner(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req AssignPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignDeliveryPartnerCommand(
		deliveryID, req.PartnerName, req.TrackingNumber, req.TrackingURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.assignDeliveryPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CollectCOD handles POST /api/v1/deliveries/:id/collect-cod - settles the
// cash collected on a COD delivery.
func (s *Server) CollectCOD(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	cmd, err := commands.NewCollectCODCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.collectCODHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryProgress handles GET /api/v1/deliveries/:id/progress - reports
// the tracking position of a delivery.
func (s *Server) GetDeliveryProgress(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	query, err := queries.NewGetDeliveryProgressQuery(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getDeliveryProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryProgress(response))
}

// GetUncollectedCOD handles GET /api/v1/deliveries/uncollected-cod - lists
// delivered COD deliveries whose cash is still outstanding.
func (s *Server) GetUncollectedCOD(ctx echo.Context) error {
	query := queries.NewGetUncollectedCODQuery()

	response, err := s.getUncollectedCODHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUncollectedCOD(response))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientStock):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrRefundExceedsCaptured),
		errors.Is(err, errs.ErrCouponIneligible):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidAmount):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
