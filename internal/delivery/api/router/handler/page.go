// Package handler contains the page endpoints of the web front. Pages read
// through the resource cache and write through the action usecase.
package handler

import (
	"encoding/json"
	"net/http"

	"pabw/internal/delivery/api/response"
	"pabw/internal/domain/entity"
	"pabw/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageData is what a read-only page renders.
type PageData struct {
	Data      json.RawMessage `json:"data"`
	IsLoading bool            `json:"is_loading"`
}

// Completed is returned by actions. Location, when set, is the page the
// client should show next.
type Completed struct {
	Data     json.RawMessage `json:"data,omitempty"`
	Location string          `json:"location,omitempty"`
}

// createdID is the shape of the backend's reply to a create.
type createdID struct {
	ID json.RawMessage `json:"id"`
}

func loadPage(c echo.Context, resources usecase.ResourceCache, ref entity.ResourceRef) error {
	res, err := resources.Load(c.Request().Context(), ref)
	if err != nil {
		return errors.Wrapf(err, "load %s", ref.Endpoint())
	}

	return response.Success(c, http.StatusOK, PageData{Data: res.Data, IsLoading: res.IsLoading})
}

// bindForm binds and validates a form. Validation failures come back as a
// ValidationError and nothing is sent to the backend.
func bindForm(c echo.Context, form any) error {
	if err := c.Bind(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form input")
	}

	return errors.WithStack(c.Validate(form))
}

func submit(c echo.Context, actions usecase.ActionUsecase, action entity.Action, message string, location string) error {
	data, err := actions.Submit(c.Request().Context(), action)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, Completed{Data: data, Location: location}, message)
}

// idOf extracts the id of a created resource as plain text.
func idOf(data json.RawMessage) string {
	var out createdID
	if err := json.Unmarshal(data, &out); err != nil || len(out.ID) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(out.ID, &s); err == nil {
		return s
	}

	return string(out.ID)
}

// HealthCheck reports that the web front is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
