package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pabw/internal/delivery/api/response"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductForm is the merchant's create and edit form.
type ProductForm struct {
	Name        string `json:"name" form:"name" validate:"required,max=124"`
	Description string `json:"description" form:"description" validate:"max=2048"`
	Price       string `json:"price" form:"price" validate:"required,numeric"`
	Stock       string `json:"stock" form:"stock" validate:"required,numeric"`
}

// QuantityForm is the buy and add-to-cart form of the public product page.
type QuantityForm struct {
	Quantity int `json:"quantity" form:"quantity" validate:"required,gt=0"`
}

// OrderLine is one product in an order request.
type OrderLine struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderRequest is the body of POST /order.
type OrderRequest struct {
	Products []OrderLine `json:"products" validate:"required,min=1,dive"`
}

// ProductHandler serves the public product page and the merchant's product pages.
type ProductHandler struct {
	catalog   usecase.CatalogUsecase
	resources usecase.ResourceCache
	actions   usecase.ActionUsecase
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(
	catalog usecase.CatalogUsecase,
	resources usecase.ResourceCache,
	actions usecase.ActionUsecase,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		catalog:   catalog,
		resources: resources,
		actions:   actions,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// Show is the public product page.
func (h *ProductHandler) Show(c echo.Context) error {
	ref := entity.Ref(entity.ResourceProduct, c.Param("product_id"))

	data, err := h.catalog.Browse(c.Request().Context(), ref)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PageData{Data: data})
}

// QRCode renders a PNG share code for the public product page.
func (h *ProductHandler) QRCode(c echo.Context) error {
	png, err := h.qrcode.GenerateProductQR(c.Param("merchant_id"), c.Param("product_id"))
	if err != nil {
		h.logger.Error("Failed to generate product QR code", slog.Any("error", err))

		return domainerrors.ErrQRCodeFailed
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Buy orders the product right away and sends the customer to the new order.
func (h *ProductHandler) Buy(c echo.Context) error {
	var form QuantityForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	productID := c.Param("product_id")
	data, err := h.actions.Submit(c.Request().Context(), entity.Action{
		Method:   http.MethodPost,
		Endpoint: entity.Ref(entity.ResourceOrder).Endpoint(),
		Body:     OrderRequest{Products: []OrderLine{{ProductID: productID, Quantity: form.Quantity}}},
		Invalidates: []entity.ResourceRef{
			entity.Ref(entity.ResourceProduct, productID),
			entity.Ref(entity.ResourceProfile),
			entity.Ref(entity.ResourceOrder),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, Completed{Data: data, Location: orderLocation(data)}, "Order placed")
}

// AddToCart puts the product in the visitor's cart.
func (h *ProductHandler) AddToCart(c echo.Context) error {
	var form QuantityForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	productID := c.Param("product_id")

	return submit(c, h.actions, entity.Action{
		Method:   http.MethodPost,
		Endpoint: entity.Ref(entity.ResourceCart).Endpoint(),
		Body:     OrderLine{ProductID: productID, Quantity: form.Quantity},
		Invalidates: []entity.ResourceRef{
			entity.Ref(entity.ResourceCart),
			entity.Ref(entity.ResourceProduct, productID),
		},
	}, "Added to cart", "")
}

// List shows the merchant's products.
func (h *ProductHandler) List(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceProduct))
}

// Detail shows one product; it also prefills the edit form.
func (h *ProductHandler) Detail(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceProduct, c.Param("id")))
}

// CreatePage renders an empty product form.
func (h *ProductHandler) CreatePage(c echo.Context) error {
	return response.Success(c, http.StatusOK, ProductForm{})
}

// Create adds a product.
func (h *ProductHandler) Create(c echo.Context) error {
	var form ProductForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	data, err := h.actions.Submit(c.Request().Context(), entity.Action{
		Method:      http.MethodPost,
		Endpoint:    entity.Ref(entity.ResourceProduct).Endpoint() + "/",
		Body:        form,
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceProduct)},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	location := "/user/product"
	if id := idOf(data); id != "" {
		location += "/" + id
	}

	return response.SuccessWithMessage(c, http.StatusCreated, Completed{Data: data, Location: location}, "Product created")
}

// Update edits a product.
func (h *ProductHandler) Update(c echo.Context) error {
	var form ProductForm
	if err := bindForm(c, &form); err != nil {
		return err
	}

	ref := entity.Ref(entity.ResourceProduct, c.Param("id"))

	return submit(c, h.actions, entity.Action{
		Method:      http.MethodPut,
		Endpoint:    ref.Endpoint(),
		Body:        form,
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceProduct), ref},
	}, "Product updated", "/user/product/"+ref.ID)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	ref := entity.Ref(entity.ResourceProduct, c.Param("id"))

	return submit(c, h.actions, entity.Action{
		Method:      http.MethodDelete,
		Endpoint:    ref.Endpoint(),
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceProduct), ref},
	}, "Product deleted", "/user/product")
}

func orderLocation(data json.RawMessage) string {
	if id := idOf(data); id != "" {
		return "/user/order/" + id
	}

	return "/user/order"
}
