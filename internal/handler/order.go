package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelez/tireshop/internal/model"
	"github.com/avelez/tireshop/internal/repository"
	"github.com/avelez/tireshop/internal/service"
)

// OrderHandler exposes order placement (public) and the admin order
// operations. Placement and cancellation delegate to the order service,
// which owns the cross-ledger transaction.
type OrderHandler struct {
	Service *service.OrderService
	Orders  *repository.OrderRepo
}

func NewOrderHandler(svc *service.OrderService, orders *repository.OrderRepo) *OrderHandler {
	if svc == nil || orders == nil {
		panic("nil dependency passed to NewOrderHandler")
	}
	return &OrderHandler{Service: svc, Orders: orders}
}

type submitOrderReq struct {
	Customer  model.Customer    `json:"customer"`
	OrderType string            `json:"orderType"`
	Items     []model.OrderItem `json:"items"`
	Total     float64           `json:"total"`
	Notes     string            `json:"notes"`
	Address   *model.Address    `json:"address"`
}

type orderIDReq struct {
	OrderID int64 `json:"orderId"`
}

type statusReq struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}

// Submit handles POST /api/submit-order. The total is stored as the
// client declared it; the server does not recompute it.
func (h *OrderHandler) Submit(c echo.Context) error {
	var req submitOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}
	req.Customer.Name = strings.TrimSpace(req.Customer.Name)
	req.Customer.Email = strings.TrimSpace(req.Customer.Email)
	req.Customer.Phone = strings.TrimSpace(req.Customer.Phone)
	if req.Customer.Name == "" || req.Customer.Email == "" || req.Customer.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "customer name, email and phone are required"})
	}
	if req.OrderType != "pickup" && req.OrderType != "delivery" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "orderType must be pickup or delivery"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "order has no items"})
	}
	for _, it := range req.Items {
		if it.TireID <= 0 || it.SelectedQty <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "each item needs a tire id and a positive quantity"})
		}
	}

	order := &model.Order{
		Customer:  req.Customer,
		OrderType: req.OrderType,
		Items:     req.Items,
		Total:     req.Total,
		Notes:     strings.TrimSpace(req.Notes),
		Address:   req.Address,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	placed, err := h.Service.Place(ctx, order)
	if err != nil {
		if errors.Is(err, repository.ErrTireNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "unknown tire in order"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "order failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "order placed", "orderId": placed.ID})
}

// Cancel handles POST /api/cancel-order (admin-only). Cancelling
// restores the deducted quantities; re-cancelling is rejected.
func (h *OrderHandler) Cancel(c echo.Context) error {
	var req orderIDReq
	if err := c.Bind(&req); err != nil || req.OrderID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "orderId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	if err := h.Service.Cancel(ctx, req.OrderID); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "order not found"})
		case errors.Is(err, repository.ErrAlreadyCancelled):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "order already cancelled"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "cancel failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "order cancelled", "orderId": req.OrderID})
}

// UpdateStatus handles POST /api/update-order-status (admin-only). The
// status string is stored verbatim.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil || req.OrderID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "orderId required"})
	}
	req.Status = strings.TrimSpace(req.Status)
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "status required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Service.UpdateStatus(ctx, req.OrderID, req.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "status updated", "orderId": req.OrderID})
}

// List handles GET /api/orders (admin-only), newest first.
func (h *OrderHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	return c.JSON(http.StatusOK, orders)
}
