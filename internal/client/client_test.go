package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SayubShakya/recipenest-client/internal/session"
	"github.com/SayubShakya/recipenest-client/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens session.TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL+"/api/rest", 5*time.Second, tokens)
}

func TestGetItemsDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rest/cuisines", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"items":[{"id":1,"name":"Nepali"},{"id":"2","name":"Italian"}]}}`))
	}, nil)

	var cuisines []types.Cuisine
	err := c.GetItems(context.Background(), "cuisines", &cuisines)
	require.NoError(t, err)
	require.Len(t, cuisines, 2)
	assert.Equal(t, types.ID(1), cuisines[0].ID)
	assert.Equal(t, "Nepali", cuisines[0].Name)
	// String-typed ids decode the same as numbers
	assert.Equal(t, types.ID(2), cuisines[1].ID)
}

func TestGetItemsEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"items":[]}}`))
	}, nil)

	var roles []types.Role
	err := c.GetItems(context.Background(), "roles", &roles)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestGetDataDecodesRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id=5", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"data":{"id":5,"title":"Momo","cuisine_id":1}}`))
	}, nil)

	var recipe types.Recipe
	err := c.GetData(context.Background(), "recipes?id=5", &recipe)
	require.NoError(t, err)
	assert.Equal(t, types.ID(5), recipe.ID)
	assert.Equal(t, "Momo", recipe.Title)
}

func TestErrorMessageFromBody(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusConflict, `{"message":"A cuisine with this name already exists"}`, "A cuisine with this name already exists"},
		{"error field", http.StatusBadRequest, `{"error":"Invalid request body"}`, "Invalid request body"},
		{"message wins over error", http.StatusBadRequest, `{"message":"first","error":"second"}`, "first"},
		{"unparseable body", http.StatusInternalServerError, `<html>boom</html>`, "HTTP error! status: 500"},
		{"empty body", http.StatusBadGateway, ``, "HTTP error! status: 502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			_, err := c.Do(context.Background(), http.MethodGet, "cuisines", nil)
			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.message, apiErr.Error())
		})
	}
}

func TestNoContentResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "id=3", r.URL.RawQuery)
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	err := c.Delete(context.Background(), "cuisines?id=3")
	assert.NoError(t, err)
}

func TestBearerTokenAttached(t *testing.T) {
	store := session.NewMemStore()
	require.NoError(t, store.Save(&session.Session{Token: "tok-123"}))

	var authHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}, store)

	_, err := c.Do(context.Background(), http.MethodGet, "auth/authorized", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", authHeader)
}

func TestNoTokenNoHeader(t *testing.T) {
	var authHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}, session.NewMemStore())

	_, err := c.Do(context.Background(), http.MethodGet, "cuisines", nil)
	require.NoError(t, err)
	assert.Empty(t, authHeader)
}

func TestPostEncodesBody(t *testing.T) {
	var received map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":9}}`))
	}, nil)

	env, err := c.Post(context.Background(), "cuisines", types.CuisinePayload{Name: "Thai"})
	require.NoError(t, err)
	assert.Equal(t, "Thai", received["name"])
	assert.NotEmpty(t, env.Data)
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	c := New("http://127.0.0.1:1/api/rest/", 100*time.Millisecond, nil)
	_, err := c.Do(context.Background(), http.MethodGet, "cuisines", nil)
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "request failed")
}
