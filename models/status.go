package models

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

var validNext = map[string]map[string]bool{
	StatusPending:   {StatusApproved: true, StatusRejected: true},
	StatusApproved:  {StatusShipped: true},
	StatusShipped:   {StatusDelivered: true},
	StatusRejected:  {},
	StatusDelivered: {},
}

func IsValidStatus(s string) bool {
	_, ok := validNext[s]
	return ok
}

// CanTransition reports whether a booking may move from one status to
// another. An empty "from" is treated as Pending: bookings written
// before the status field existed have no value at all.
func CanTransition(from, to string) bool {
	if from == "" {
		from = StatusPending
	}
	return validNext[from][to]
}

// StatusNote is the tracking-history note recorded for a status change.
func StatusNote(status string) string {
	if status == StatusApproved {
		return "Your order has been approved by the manager"
	}
	return "Order status updated to " + status
}
