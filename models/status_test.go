package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusPending, StatusShipped, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusDelivered, StatusPending, false},
		// bookings written before the status field existed
		{"", StatusApproved, true},
		{"", StatusDelivered, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%q -> %q", tt.from, tt.to)
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusDelivered))
	assert.False(t, IsValidStatus("Order Placed"))
	assert.False(t, IsValidStatus("whatever"))
	assert.False(t, IsValidStatus(""))
}

func TestStatusNote(t *testing.T) {
	assert.Equal(t, "Your order has been approved by the manager", StatusNote(StatusApproved))
	assert.Equal(t, "Order status updated to Rejected", StatusNote(StatusRejected))
}
