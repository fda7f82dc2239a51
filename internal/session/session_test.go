package session

import (
	"context"
	"testing"
	"time"

	"marketplace-service/internal/redisclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Skip("Integration test - requires Redis")

	redisClient, err := redisclient.NewClient("localhost:6379", "", 0)
	require.NoError(t, err)
	defer redisClient.Close()

	sessions := NewStore(redisClient, time.Minute)
	ctx := context.Background()

	token, err := sessions.Create(ctx, &Session{
		UserID:   1,
		Role:     "VENDOR",
		VendorID: 7,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := sessions.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, "VENDOR", sess.Role)
	assert.Equal(t, int64(7), sess.VendorID)
	assert.False(t, sess.CreatedAt.IsZero())

	require.NoError(t, sessions.Clear(ctx, token))
	_, err = sessions.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUnknownToken(t *testing.T) {
	t.Skip("Integration test - requires Redis")

	redisClient, err := redisclient.NewClient("localhost:6379", "", 0)
	require.NoError(t, err)
	defer redisClient.Close()

	sessions := NewStore(redisClient, time.Minute)
	_, err = sessions.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}
