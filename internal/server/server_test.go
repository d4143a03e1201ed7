package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	cfg := newTestConfig(t.TempDir())
	cfg.Auth.Secret = ""

	_, err := New(cfg)
	assert.ErrorContains(t, err, "invalid config")
}

func TestStart_ShutdownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := newTestConfig(t.TempDir())
	cfg.HTTP.Addr = "127.0.0.1:0"

	s, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestStart_AddrInUse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := newTestConfig(t.TempDir())
	cfg.HTTP.Addr = l.Addr().String()

	s, err := New(cfg)
	require.NoError(t, err)

	err = s.Start(context.Background())
	assert.ErrorContains(t, err, "http server")
}
