package handler

import (
	"net/http"

	"pabw/internal/delivery/api/response"
	"pabw/internal/domain/entity"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the cart page.
type CartHandler struct {
	resources usecase.ResourceCache
	actions   usecase.ActionUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(resources usecase.ResourceCache, actions usecase.ActionUsecase) *CartHandler {
	return &CartHandler{resources: resources, actions: actions}
}

// List shows the cart.
func (h *CartHandler) List(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceCart))
}

// Remove drops one cart line.
func (h *CartHandler) Remove(c echo.Context) error {
	return submit(c, h.actions, entity.Action{
		Method:      http.MethodDelete,
		Endpoint:    entity.Ref(entity.ResourceCart, c.Param("id")).Endpoint(),
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceCart)},
	}, "Removed from cart", "")
}

// Checkout orders the selected cart lines.
func (h *CartHandler) Checkout(c echo.Context) error {
	var form OrderRequest
	if err := bindForm(c, &form); err != nil {
		return err
	}

	data, err := h.actions.Submit(c.Request().Context(), entity.Action{
		Method:   http.MethodPost,
		Endpoint: entity.Ref(entity.ResourceOrder).Endpoint(),
		Body:     form,
		Invalidates: []entity.ResourceRef{
			entity.Ref(entity.ResourceCart),
			entity.Ref(entity.ResourceOrder),
			entity.Ref(entity.ResourceProfile),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, Completed{Data: data, Location: orderLocation(data)}, "Order placed")
}
