package entity

import "slices"

// DeliveryStatus is one step in the life of an order.
type DeliveryStatus string

const (
	StatusProcessing                     DeliveryStatus = "Processing"
	StatusWaitingForCourier              DeliveryStatus = "WaitingForCourier"
	StatusPickedUpByCourier              DeliveryStatus = "PickedUpByCourier"
	StatusArrivedInDestination           DeliveryStatus = "ArrivedInDestination"
	StatusArrivedInDestinationConfirmed  DeliveryStatus = "ArrivedInDestinationConfirmed"
	StatusSendBackToMerchant             DeliveryStatus = "SendBackToMerchant"
	StatusArrivedInMerchant              DeliveryStatus = "ArrivedInMerchant"
	StatusProcessingInMerchant           DeliveryStatus = "ProcessingInMerchant"
	StatusWaitingForMerchantConfirmation DeliveryStatus = "WaitingForMerchantConfirmation"
)

var deliveryStatusLabels = map[DeliveryStatus]string{
	StatusProcessing:                     "Processing",
	StatusWaitingForCourier:              "Waiting for courier",
	StatusPickedUpByCourier:              "Picked up by courier",
	StatusArrivedInDestination:           "Arrived at destination",
	StatusArrivedInDestinationConfirmed:  "Received by customer",
	StatusSendBackToMerchant:             "Returning to merchant",
	StatusArrivedInMerchant:              "Returned to merchant",
	StatusProcessingInMerchant:           "Processing at merchant",
	StatusWaitingForMerchantConfirmation: "Waiting for merchant confirmation",
}

// courierTransitions lists the statuses a courier may move an order to.
var courierTransitions = map[DeliveryStatus][]DeliveryStatus{
	StatusWaitingForCourier:  {StatusPickedUpByCourier},
	StatusPickedUpByCourier:  {StatusArrivedInDestination, StatusSendBackToMerchant},
	StatusSendBackToMerchant: {StatusArrivedInMerchant},
}

// Label returns a human readable label; unknown statuses are shown verbatim.
func (s DeliveryStatus) Label() string {
	if label, ok := deliveryStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// IsValid checks if the status is known.
func (s DeliveryStatus) IsValid() bool {
	_, ok := deliveryStatusLabels[s]

	return ok
}

// CourierNext returns the statuses a courier may pick from s.
func (s DeliveryStatus) CourierNext() []DeliveryStatus {
	return slices.Clone(courierTransitions[s])
}

// CanCourierMoveTo reports whether a courier may move an order from s to next.
func (s DeliveryStatus) CanCourierMoveTo(next DeliveryStatus) bool {
	return slices.Contains(courierTransitions[s], next)
}

// EndsCourierAssignment reports whether reaching s releases the courier,
// after which the courier is sent back to the delivery list.
func (s DeliveryStatus) EndsCourierAssignment() bool {
	return s == StatusArrivedInDestination || s == StatusArrivedInMerchant
}

// StatusEntry is one element of an order's status history as sent by the backend.
type StatusEntry struct {
	Type struct {
		Type DeliveryStatus `json:"type"`
	} `json:"type"`
	Date string `json:"date"`
}

// StatusView is the display form of a status history entry.
type StatusView struct {
	Status DeliveryStatus `json:"status"`
	Label  string         `json:"label"`
	Date   string         `json:"date,omitempty"`
}

// CurrentStatus returns the latest status of a history, or "" when empty.
func CurrentStatus(history []StatusEntry) DeliveryStatus {
	if len(history) == 0 {
		return ""
	}

	return history[len(history)-1].Type.Type
}

// StatusTimeline renders a history newest first.
func StatusTimeline(history []StatusEntry) []StatusView {
	views := make([]StatusView, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		status := history[i].Type.Type
		views = append(views, StatusView{Status: status, Label: status.Label(), Date: history[i].Date})
	}

	return views
}
