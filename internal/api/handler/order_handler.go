package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velkart/commerce-api/internal/api/metrics"
	"github.com/velkart/commerce-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order reads and status mutation.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Mine returns the caller's orders.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/orders/mine [get]
func (h *OrderHandler) Mine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.service.MyOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// All returns every order, newest first. Admin only.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  statusResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/orders [get]
func (h *OrderHandler) All(c echo.Context) error {
	orders, err := h.service.AllOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus sets a new status on the order identified by the path
// parameter. Admin only.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderID  path      string              true  "Order id"
// @Param        body     body      orderStatusRequest  true  "New status"
// @Success      200      {object}  domain.Order
// @Failure      400      {object}  statusResponse
// @Failure      404      {object}  statusResponse
// @Router       /api/orders/{orderID}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, _ := c.Get("user_id").(string)
	order, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateOrderStatusInput{
		OrderID: c.Param("orderID"),
		Status:  req.Status,
		ActorID: actorID,
	})
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(order.Status)).Inc()
	return c.JSON(http.StatusOK, order)
}
