package clientservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/clients/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"name":"Irina","phone":"+70000000000"}`))
		case "/internal/clients/2":
			_, _ = w.Write([]byte(`{"id":2,"name":"Blocked","blocked":true}`))
		case "/internal/clients/500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetClient(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, time.Second, nopLogger{})

	client, err := c.GetClient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Irina", client.Name)

	_, err = c.GetClient(context.Background(), 3)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = c.GetClient(context.Background(), 500)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetClientWithGracefulDegradation(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := c.GetClientWithGracefulDegradation(context.Background(), 3)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = c.GetClientWithGracefulDegradation(context.Background(), 2)
	assert.ErrorIs(t, err, ErrClientBlocked)

	_, err = c.GetClientWithGracefulDegradation(context.Background(), 500)
	assert.ErrorIs(t, err, ErrServiceDegraded)

	down := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})
	_, err = down.GetClientWithGracefulDegradation(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
