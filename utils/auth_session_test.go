package utils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestAuthSessionRoundTrip(t *testing.T) {
	client := newCacheClient(t)
	hash := HashToken("some-token")

	session := AuthSession{
		UserID:      "u1",
		Email:       "rocky@gym.com",
		DisplayName: "Rocky",
		Role:        "user",
	}
	require.NoError(t, SaveAuthSession(client, hash, session))

	got, err := GetAuthSession(client, hash)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "user", got.Role)

	require.NoError(t, DeleteAuthSession(client, hash))
	_, err = GetAuthSession(client, hash)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestGetAuthSessionMissing(t *testing.T) {
	client := newCacheClient(t)

	_, err := GetAuthSession(client, HashToken("never-saved"))
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDeleteAuthSessionIdempotent(t *testing.T) {
	client := newCacheClient(t)
	require.NoError(t, DeleteAuthSession(client, HashToken("never-saved")))
}
