package server

import (
	"testing"
	"time"

	"github.com/mgavrilov/blackraven/internal/config"
	httphandler "github.com/mgavrilov/blackraven/internal/handler/http"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *httphandler.Handler {
	return httphandler.NewHandler(&service.Services{}, "test", logger.Nop())
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	srv, err := NewServer(newTestHandler(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	hs := newHTTPServer(newTestHandler().Init(), cfg, logger.Nop())

	done := make(chan struct{})
	go func() {
		hs.Run()
		close(done)
	}()

	// give the listener a moment to come up before stopping it
	time.Sleep(50 * time.Millisecond)
	hs.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}
