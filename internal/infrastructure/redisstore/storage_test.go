package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_URLInvalida(t *testing.T) {
	_, err := New(context.Background(), "http://no-es-redis", "p:")
	assert.Error(t, err)
}

func TestStorage_ClaveVaciaNoConsultaRedis(t *testing.T) {
	s := NewWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "p:")
	defer s.Close()

	val, err := s.Get("")
	require.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, s.Set("", []byte("x"), time.Minute))
	assert.NoError(t, s.Set("k", nil, time.Minute))
	assert.NoError(t, s.Delete(""))
}

// Requiere un Redis real: REDIS_TEST_URL=redis://localhost:6379/15
func TestStorage_Redis(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL no definida")
	}
	ctx := context.Background()
	s, err := New(ctx, url, "woodini:test:")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Reset())

	val, err := s.Get("sid-1")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("sid-1", []byte("datos"), time.Minute))
	val, err = s.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("datos"), val)

	require.NoError(t, s.Delete("sid-1"))
	val, err = s.Get("sid-1")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("sid-2", []byte("x"), time.Minute))
	require.NoError(t, s.Reset())
	val, err = s.Get("sid-2")
	require.NoError(t, err)
	assert.Nil(t, val)
}
