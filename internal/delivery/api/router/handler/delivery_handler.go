package handler

import (
	"log/slog"
	"net/http"

	"pabw/internal/delivery/api/response"
	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const courierDeliveryPath = "/courier/delivery"

// StatusForm moves a delivery to its next status.
type StatusForm struct {
	Type entity.DeliveryStatus `json:"type" form:"type" validate:"required"`
}

// statusChange is the body of POST /delivery/:id/change.
type statusChange struct {
	Type struct {
		Type    entity.DeliveryStatus `json:"type"`
		Content any                   `json:"content"`
	} `json:"type"`
}

// DeliveryHandler serves the courier's delivery pages.
type DeliveryHandler struct {
	resources usecase.ResourceCache
	actions   usecase.ActionUsecase
	logger    *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(resources usecase.ResourceCache, actions usecase.ActionUsecase, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{resources: resources, actions: actions, logger: logger}
}

// List shows the deliveries open to the courier.
func (h *DeliveryHandler) List(c echo.Context) error {
	return loadPage(c, h.resources, entity.Ref(entity.ResourceDelivery))
}

// Detail shows one delivery with the statuses the courier may move it to.
func (h *DeliveryHandler) Detail(c echo.Context) error {
	ref := entity.Ref(entity.ResourceDelivery, c.Param("id"))

	res, err := h.resources.Load(c.Request().Context(), ref)
	if err != nil {
		return errors.Wrapf(err, "load %s", ref.Endpoint())
	}

	return response.Success(c, http.StatusOK, newStatusPage(res.Data, true))
}

// ChangeStatus moves a delivery along. Transitions the courier may not make
// are refused locally.
func (h *DeliveryHandler) ChangeStatus(c echo.Context) error {
	var form StatusForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	if !form.Type.IsValid() {
		return domainerrors.NewValidationError("type", "is not a known status")
	}

	ctx := c.Request().Context()
	ref := entity.Ref(entity.ResourceDelivery, c.Param("id"))

	res, err := h.resources.Load(ctx, ref)
	if err != nil {
		return errors.Wrapf(err, "load %s", ref.Endpoint())
	}

	current := entity.CurrentStatus(historyOf(res.Data))
	if !current.CanCourierMoveTo(form.Type) {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Refused delivery status change",
			slog.String("delivery", ref.ID),
			slog.String("from", string(current)),
			slog.String("to", string(form.Type)),
		)

		return &domainerrors.ValidationError{Fields: map[string]string{
			"type": "cannot move from " + current.Label() + " to " + form.Type.Label(),
		}}
	}

	action := entity.Action{
		Method:      http.MethodPost,
		Invalidates: []entity.ResourceRef{entity.Ref(entity.ResourceDelivery), ref},
	}
	if form.Type == entity.StatusPickedUpByCourier {
		action.Endpoint = ref.Endpoint() + "/pickup"
		action.Body = struct{}{}
	} else {
		var body statusChange
		body.Type.Type = form.Type
		action.Endpoint = ref.Endpoint() + "/change"
		action.Body = body
	}

	location := ""
	if form.Type.EndsCourierAssignment() {
		location = courierDeliveryPath
	}

	return submit(c, h.actions, action, "Delivery is now "+form.Type.Label(), location)
}
