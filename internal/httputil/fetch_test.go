// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Meals []map[string]string `json:"meals"`
}

func TestGetJSON_Success(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"meals":[{"idMeal":"1"}]}`)
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "test/0.1", &p)
	require.NoError(t, err)

	require.Len(t, p.Meals, 1)
	assert.Equal(t, "1", p.Meals[0]["idMeal"])
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "maintenance")
	}))
	defer ts.Close()

	var p payload
	err := GetJSON(context.Background(), ts.Client(), ts.URL, "", &p)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Equal(t, "maintenance", se.Body)
	// Failures are never retried.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetJSON_TooManyRequestsNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	err := GetJSON(context.Background(), ts.Client(), ts.URL, "", &payload{})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetJSON_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer ts.Close()

	err := GetJSON(context.Background(), ts.Client(), ts.URL, "", &payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestGetJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"meals":null}`)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := GetJSON(ctx, ts.Client(), ts.URL, "", &payload{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetJSON_NilClientUsesDefault(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"meals":null}`)
	}))
	defer ts.Close()

	var p payload
	require.NoError(t, GetJSON(context.Background(), nil, ts.URL, "", &p))
	assert.Nil(t, p.Meals)
}
