package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spendwell/ynab-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransport(serverURL string) *RESTTransport {
	trans := NewRESTTransport(&Options{BaseURL: serverURL})
	trans.SetToken("test-token")
	return trans
}

func TestDo_MissingToken(t *testing.T) {
	trans := NewRESTTransport(&Options{BaseURL: "http://localhost"})

	err := trans.Do(context.Background(), "GET", "/budgets", nil, nil, nil)
	assert.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestDo_SendsAuthAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, types.UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "/budgets", r.URL.Path)

		w.Write([]byte(`{"data":{"budgets":[{"id":"b1","name":"My Budget"}]}}`))
	}))
	defer server.Close()

	trans := newTestTransport(server.URL)

	var result struct {
		Budgets []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"budgets"`
	}
	err := trans.Do(context.Background(), "GET", "/budgets", nil, nil, &result)
	require.NoError(t, err)
	require.Len(t, result.Budgets, 1)
	assert.Equal(t, "b1", result.Budgets[0].ID)
	assert.Equal(t, "My Budget", result.Budgets[0].Name)
}

func TestDo_QueryAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("since_date"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["memo"])

		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	trans := newTestTransport(server.URL)

	query := url.Values{}
	query.Set("since_date", "2024-01-01")
	err := trans.Do(context.Background(), "POST", "/budgets/b1/transactions", query,
		map[string]string{"memo": "hello"}, nil)
	require.NoError(t, err)
}

func TestDo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"id":"401","name":"unauthorized","detail":"Unauthorized"}}`, types.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{}`, types.ErrForbidden},
		{"not found", http.StatusNotFound, `{"error":{"id":"404.2","name":"resource_not_found","detail":"Resource not found"}}`, types.ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, `{}`, types.ErrRateLimited},
		{"gateway timeout", http.StatusGatewayTimeout, `{}`, types.ErrTimeout},
		{"server error", http.StatusInternalServerError, `{}`, types.ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			trans := newTestTransport(server.URL)
			err := trans.Do(context.Background(), "GET", "/budgets", nil, nil, nil)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDo_BadRequestCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"id":"400","name":"bad_request","detail":"trial expired"}}`))
	}))
	defer server.Close()

	trans := newTestTransport(server.URL)
	err := trans.Do(context.Background(), "GET", "/budgets", nil, nil, nil)
	require.Error(t, err)

	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad_request", apiErr.Code)
	assert.Equal(t, "trial expired", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestDo_Retries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":{"user":{"id":"u1"}}}`))
	}))
	defer server.Close()

	trans := NewRESTTransport(&Options{
		BaseURL:     server.URL,
		RetryConfig: &types.RetryConfig{MaxRetries: 3},
	})
	trans.SetToken("test-token")

	var result struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	err := trans.Do(context.Background(), "GET", "/user", nil, nil, &result)
	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, 3, attempts)
}
