package status

import (
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorTransitionChain(t *testing.T) {
	allowed, err := AllowedTransitions(Pending, RoleVendor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{Confirmed, Cancelled}, allowed)

	allowed, err = AllowedTransitions(Confirmed, RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, []string{Processing}, allowed) // no cancellation path past PENDING

	allowed, err = AllowedTransitions(Processing, RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, []string{Shipped}, allowed)

	allowed, err = AllowedTransitions(Shipped, RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, []string{Delivered}, allowed)
}

func TestTerminalStatusesAllowNothing(t *testing.T) {
	for _, s := range []string{Delivered, Cancelled, Refunded} {
		for _, role := range []string{RoleVendor, RoleAdmin} {
			allowed, err := AllowedTransitions(s, role)
			require.NoError(t, err)
			assert.Empty(t, allowed, "%s/%s", s, role)
		}
	}
}

func TestAdminTransitionsFromNonTerminal(t *testing.T) {
	allowed, err := AllowedTransitions(Processing, RoleAdmin)
	require.NoError(t, err)

	// Any other status, including a direct refund.
	assert.ElementsMatch(t,
		[]string{Pending, Confirmed, Shipped, Delivered, Cancelled, Refunded},
		allowed)
	assert.True(t, CanTransition(Processing, Refunded, RoleAdmin))
}

func TestAllowedTransitionsReturnsCopy(t *testing.T) {
	allowed, err := AllowedTransitions(Pending, RoleVendor)
	require.NoError(t, err)
	require.NotEmpty(t, allowed)

	allowed[0] = Refunded

	again, err := AllowedTransitions(Pending, RoleVendor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{Confirmed, Cancelled}, again)
	assert.False(t, CanTransition(Pending, Refunded, RoleVendor))
}

func TestAllowedTransitionsUnknownStatus(t *testing.T) {
	_, err := AllowedTransitions("LOST", RoleVendor)
	var unknownErr *UnknownStatusError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(Pending, RoleVendor))
	assert.False(t, CanCancel(Confirmed, RoleVendor))
	assert.False(t, CanCancel(Shipped, RoleVendor))

	assert.True(t, CanCancel(Pending, RoleAdmin))
	assert.True(t, CanCancel(Shipped, RoleAdmin))
	assert.False(t, CanCancel(Delivered, RoleAdmin))
}

func TestApplyTransition(t *testing.T) {
	order := &models.Order{ID: 1, Status: Pending, Version: 3}

	updated, err := ApplyTransition(order, Confirmed, RoleVendor, "stock checked")
	require.NoError(t, err)

	assert.Equal(t, Confirmed, updated.Status)
	assert.Equal(t, "stock checked", updated.Note)
	assert.Equal(t, int64(4), updated.Version)
	assert.False(t, updated.UpdatedAt.IsZero())

	// Input order untouched.
	assert.Equal(t, Pending, order.Status)
	assert.Equal(t, int64(3), order.Version)
}

func TestApplyTransitionIllegal(t *testing.T) {
	order := &models.Order{ID: 1, Status: Confirmed}

	_, err := ApplyTransition(order, Cancelled, RoleVendor, "")
	var illegalErr *IllegalTransitionError
	require.ErrorAs(t, err, &illegalErr)
	assert.Equal(t, Confirmed, illegalErr.From)
	assert.Equal(t, Cancelled, illegalErr.To)
}

func TestApplyTransitionTerminal(t *testing.T) {
	order := &models.Order{ID: 1, Status: Delivered}

	_, err := ApplyTransition(order, Refunded, RoleAdmin, "")
	var termErr *TerminalStateError
	require.ErrorAs(t, err, &termErr)
	assert.Equal(t, Delivered, termErr.Status)
}

func TestApplyTransitionUnknownTarget(t *testing.T) {
	order := &models.Order{ID: 1, Status: Pending}

	_, err := ApplyTransition(order, "RETURNED", RoleAdmin, "")
	var unknownErr *UnknownStatusError
	assert.ErrorAs(t, err, &unknownErr)
}
