package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBillingClientHasPaymentMethod(t *testing.T) {
	brandID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brands/payment-status", r.URL.Path)
		assert.Equal(t, brandID.String(), r.URL.Query().Get("brand_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hasPaymentMethod": true}`))
	}))
	defer srv.Close()

	client := NewBillingClient(srv.URL, srv.Client(), zap.NewNop())
	has, err := client.HasPaymentMethod(context.Background(), brandID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestBillingClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewBillingClient(srv.URL, srv.Client(), zap.NewNop())
	has, err := client.HasPaymentMethod(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, has, "errors must report no payment method")
}

func TestBillingClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	client := NewBillingClient(srv.URL, http.DefaultClient, zap.NewNop())
	has, err := client.HasPaymentMethod(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, has)
}
