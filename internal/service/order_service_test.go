package service

import (
	"testing"

	"marketplace-service/internal/status"

	"github.com/stretchr/testify/assert"
)

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "terminal_state", rejectReason(&status.TerminalStateError{Status: status.Delivered}))
	assert.Equal(t, "illegal_transition", rejectReason(&status.IllegalTransitionError{
		From: status.Confirmed, To: status.Cancelled, Role: status.RoleVendor,
	}))
	assert.Equal(t, "unknown_status", rejectReason(&status.UnknownStatusError{Status: "LOST"}))
	assert.Equal(t, "error", rejectReason(assert.AnError))
}

func TestTransition(t *testing.T) {
	// Requires Redis and Postgres; covered by the status package unit
	// tests plus the store integration tests.
	t.Skip("Integration test - requires Redis and database")
}
