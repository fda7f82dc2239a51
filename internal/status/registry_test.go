package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	meta, err := Metadata(Shipped)
	require.NoError(t, err)
	assert.Equal(t, "Shipped", meta.Label)
	assert.Equal(t, "truck", meta.Icon)
	assert.False(t, meta.Terminal)
}

func TestMetadataUnknownStatus(t *testing.T) {
	_, err := Metadata("ARCHIVED")
	require.Error(t, err)

	var unknownErr *UnknownStatusError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ARCHIVED", unknownErr.Status)
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []string{Delivered, Cancelled, Refunded} {
		assert.True(t, IsTerminal(s), s)
	}
	for _, s := range []string{Pending, Confirmed, Processing, Shipped} {
		assert.False(t, IsTerminal(s), s)
	}
}

func TestEveryStatusHasMetadata(t *testing.T) {
	for _, s := range All {
		meta, err := Metadata(s)
		require.NoError(t, err, s)
		assert.NotEmpty(t, meta.Label, s)
		assert.NotEmpty(t, meta.Icon, s)
		assert.NotEmpty(t, meta.Color, s)
	}
}
