package http_server

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownStopsServer(t *testing.T) {
	s := New(http.NotFoundHandler(), "127.0.0.1:0", ShutdownTimeout(time.Second))
	assert.Equal(t, "127.0.0.1:0", s.Addr())

	require.NoError(t, s.Shutdown())

	select {
	case err := <-s.Notify():
		assert.True(t, errors.Is(err, http.ErrServerClosed))
	case <-time.After(time.Second):
		t.Fatal("server did not report shutdown")
	}
}
