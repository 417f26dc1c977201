package model

// Status describes shipment lifecycle position.
type Status string

const (
	StatusPending        Status = "Pending"
	StatusProcessing     Status = "Processing"
	StatusInTransit      Status = "In Transit"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusOnHold         Status = "On Hold"
	StatusCancelled      Status = "Cancelled"
)

// ProgressHalted marks orders whose progress bar should render as halted
// rather than as a percentage.
const ProgressHalted = -1

var progressByStatus = map[Status]int{
	StatusPending:        10,
	StatusProcessing:     25,
	StatusInTransit:      50,
	StatusOutForDelivery: 75,
	StatusDelivered:      100,
	StatusOnHold:         ProgressHalted,
	StatusCancelled:      ProgressHalted,
}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	_, ok := progressByStatus[s]
	return ok
}

// Terminal reports whether no further transitions are accepted out of s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Progress maps status to a percentage-complete value, or ProgressHalted
// for On Hold and Cancelled.
func (s Status) Progress() int {
	if p, ok := progressByStatus[s]; ok {
		return p
	}
	return 0
}

// TransitionPolicy decides whether a status transition is accepted.
type TransitionPolicy interface {
	Allow(from, to Status) bool
}

// OpenTransitions accepts any transition out of a non-terminal state.
// Delivered and Cancelled orders accept no further updates.
type OpenTransitions struct{}

func (OpenTransitions) Allow(from, to Status) bool {
	return to.Valid() && !from.Terminal()
}
