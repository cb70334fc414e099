package http

import (
	"errors"
	"net/http"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/generated/servers"
	"orderadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	deleteOrderPermanentlyHandler commands.DeleteOrderPermanentlyCommandHandler
	softDeleteOrderHandler        commands.SoftDeleteOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler

	logger *zap.Logger
	now    func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	deleteOrderPermanentlyHandler commands.DeleteOrderPermanentlyCommandHandler,
	softDeleteOrderHandler commands.SoftDeleteOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *zap.Logger,
) *Server {
	return &Server{
		deleteOrderPermanentlyHandler: deleteOrderPermanentlyHandler,
		softDeleteOrderHandler:        softDeleteOrderHandler,
		listOrdersHandler:             listOrdersHandler,
		getOrderHandler:               getOrderHandler,
		logger:                        logger,
		now:                           time.Now,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListOrders handles GET /admin/orders - one page of orders, soft-deleted included.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(
		deref(params.No), deref(params.User), deref(params.Page), deref(params.PerPage),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid list parameters: " + err.Error(),
		})
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("list orders failed", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, page)
}

// GetOrder handles GET /admin/orders/{id} - one order with its lines.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return invalidOrderID(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return invalidOrderID(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		s.logger.Error("get order failed", zap.Int64("order_id", id), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /admin/orders/{id} - permanent deletion.
// The outcome travels in the body; the status code stays 200 on failure too.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return invalidOrderID(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderPermanentlyCommand(orderID)
	if err != nil {
		return invalidOrderID(ctx, err)
	}

	outcome := s.deleteOrderPermanentlyHandler.Execute(ctx.Request().Context(), cmd)

	return ctx.JSON(http.StatusOK, servers.DeletionOutcome{
		Status:  outcome.Status,
		Message: outcome.Message,
	})
}

// SoftDeleteOrder handles POST /admin/orders/{id}/soft-delete.
func (s *Server) SoftDeleteOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return invalidOrderID(ctx, err)
	}

	cmd, err := commands.NewSoftDeleteOrderCommand(orderID, s.now())
	if err != nil {
		return invalidOrderID(ctx, err)
	}

	if err = s.softDeleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		s.logger.Error("soft delete order failed", zap.Int64("order_id", id), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to soft-delete order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

func invalidOrderID(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid order id: " + err.Error(),
	})
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
