package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelez/tireshop/internal/model"
	"github.com/avelez/tireshop/internal/repository"
)

// InventoryHandler serves the public catalog and the admin bulk save.
type InventoryHandler struct {
	Tires *repository.TireRepo
}

func NewInventoryHandler(tires *repository.TireRepo) *InventoryHandler {
	if tires == nil {
		panic("nil repository passed to NewInventoryHandler")
	}
	return &InventoryHandler{Tires: tires}
}

// List handles GET /api/inventory. It returns every tire as a plain
// array; this is the public catalog and needs no authentication.
func (h *InventoryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tires, err := h.Tires.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "database error"})
	}
	return c.JSON(http.StatusOK, tires)
}

// Save handles POST /api/save-inventory (admin-only). The body is a
// full array of tire records, applied as an upsert: existing ids are
// overwritten, new ids inserted, absent ids left untouched.
func (h *InventoryHandler) Save(c echo.Context) error {
	var tires []model.Tire
	if err := c.Bind(&tires); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}
	for _, t := range tires {
		if t.ID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "tire id must be positive"})
		}
		if t.Quantity < 0 || t.Price < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "quantity and price must be non-negative"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	if err := h.Tires.BulkUpsert(ctx, tires); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "save failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": fmt.Sprintf("Saved %d items", len(tires))})
}
