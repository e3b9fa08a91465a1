package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/platform/exchangerate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"IDR":15500.0,"EUR":0.92,"usd":1.0}}`))
	}))
	defer server.Close()

	client := exchangerate.NewClient(server.URL, time.Second)
	rates, err := client.FetchRates(context.Background(), "usd")
	require.NoError(t, err)

	idr, ok := rates["IDR"]
	require.True(t, ok)
	assert.Equal(t, "15500", idr.String())

	// Codes are normalized to uppercase
	_, ok = rates["USD"]
	assert.True(t, ok)
}

func TestFetchRates_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := exchangerate.NewClient(server.URL, time.Second)
	_, err := client.FetchRates(context.Background(), "USD")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchRates_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := exchangerate.NewClient(server.URL, time.Second)
	_, err := client.FetchRates(context.Background(), "USD")
	assert.Error(t, err)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer server.Close()

	client := exchangerate.NewClient(server.URL, time.Second)
	_, err := client.FetchRates(context.Background(), "USD")
	assert.Error(t, err)
}

func TestFetchRates_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"rates":{"IDR":1.0}}`))
	}))
	defer server.Close()

	client := exchangerate.NewClient(server.URL, 20*time.Millisecond)
	_, err := client.FetchRates(context.Background(), "USD")
	assert.Error(t, err)
}

func TestFetchRates_EmptyBase(t *testing.T) {
	client := exchangerate.NewClient("http://localhost:0", time.Second)
	_, err := client.FetchRates(context.Background(), "  ")
	assert.Error(t, err)
}
