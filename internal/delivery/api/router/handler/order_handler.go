package handler

import (
	"net/http"

	"pabw/internal/delivery/api/response"
	"pabw/internal/domain/entity"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves the customer's orders and the merchant's transactions.
// Both are the same backend object seen from either side.
type OrderHandler struct {
	resources usecase.ResourceCache
	actions   usecase.ActionUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(resources usecase.ResourceCache, actions usecase.ActionUsecase) *OrderHandler {
	return &OrderHandler{resources: resources, actions: actions}
}

// Orders lists the customer's orders.
func (h *OrderHandler) Orders(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceOrder))
}

// Order shows one order with its status history.
func (h *OrderHandler) Order(c echo.Context) error {
	return h.statusPage(c, entity.Ref(entity.ResourceOrder, c.Param("id")))
}

// Transactions lists the merchant's incoming orders.
func (h *OrderHandler) Transactions(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceTransaction))
}

// Transaction shows one incoming order.
func (h *OrderHandler) Transaction(c echo.Context) error {
	return h.statusPage(c, entity.Ref(entity.ResourceTransaction, c.Param("id")))
}

// Confirm accepts an incoming order so it can be handed to a courier.
func (h *OrderHandler) Confirm(c echo.Context) error {
	ref := entity.Ref(entity.ResourceTransaction, c.Param("id"))

	return submit(c, h.actions, entity.Action{
		Method:      http.MethodPost,
		Endpoint:    ref.Endpoint() + "/confirm",
		Body:        struct{}{},
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceTransaction), ref},
	}, "Transaction confirmed", "")
}

func (h *OrderHandler) statusPage(c echo.Context, ref entity.ResourceRef) error {
	res, err := h.resources.Load(c.Request().Context(), ref)
	if err != nil {
		return errors.Wrapf(err, "load %s", ref.Endpoint())
	}

	return response.Success(c, http.StatusOK, newStatusPage(res.Data, false))
}
