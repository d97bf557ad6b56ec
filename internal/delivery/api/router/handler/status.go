package handler

import (
	"encoding/json"

	"pabw/internal/domain/entity"
)

// StatusPage is an order, transaction or delivery together with the
// display form of its status history.
type StatusPage struct {
	Data     json.RawMessage         `json:"data"`
	Status   entity.DeliveryStatus   `json:"status,omitempty"`
	Label    string                  `json:"label,omitempty"`
	Timeline []entity.StatusView     `json:"timeline,omitempty"`
	Next     []entity.DeliveryStatus `json:"next,omitempty"`
}

type statusHistory struct {
	Status []entity.StatusEntry `json:"status"`
}

// historyOf reads the status history of an order. Orders whose status is
// not a history have none.
func historyOf(data json.RawMessage) []entity.StatusEntry {
	var h statusHistory
	if err := json.Unmarshal(data, &h); err != nil {
		return nil
	}

	return h.Status
}

func newStatusPage(data json.RawMessage, forCourier bool) StatusPage {
	history := historyOf(data)
	current := entity.CurrentStatus(history)

	page := StatusPage{Data: data, Timeline: entity.StatusTimeline(history)}
	if current != "" {
		page.Status = current
		page.Label = current.Label()
	}
	if forCourier {
		page.Next = current.CourierNext()
	}

	return page
}
