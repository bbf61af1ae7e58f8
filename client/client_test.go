package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	Name string `json:"name"`
}

type widgetParams struct {
	View     string `url:"view,omitempty"`
	FromDate string `url:"from_date,omitempty"`
}

func testClient(srv *httptest.Server) *Client {
	return &Client{
		Client: srv.Client(),
		Host:   srv.URL,
		Auth:   &AuthInfo{AccessToken: "tok123"},
	}
}

func TestGetEncodesParamsAndAuth(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v2/widgets", r.URL.Path)
		assert.Equal("2024-01-01", r.URL.Query().Get("from_date"))
		assert.Equal("all", r.URL.Query().Get("view"))
		assert.Equal("Bearer tok123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"widget": widget{Name: "a"}})
	}))
	defer srv.Close()

	var out struct {
		Widget widget `json:"widget"`
	}
	err := testClient(srv).Get(context.Background(), "widgets", &widgetParams{View: "all", FromDate: "2024-01-01"}, &out)
	assert.NoError(err)
	assert.Equal("a", out.Widget.Name)
}

func TestPostSendsJSONBody(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("POST", r.Method)
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		var in struct {
			Widget widget `json:"widget"`
		}
		assert.NoError(json.NewDecoder(r.Body).Decode(&in))
		assert.Equal("b", in.Widget.Name)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	body := map[string]widget{"widget": {Name: "b"}}
	var out struct {
		Widget widget `json:"widget"`
	}
	err := testClient(srv).Post(context.Background(), "widgets", body, &out)
	assert.NoError(err)
	assert.Equal("b", out.Widget.Name)
}

func TestAPIErrorSingleShape(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"error":{"message":"Contact is required"}}}`))
	}))
	defer srv.Close()

	err := testClient(srv).Get(context.Background(), "widgets/1", nil, &struct{}{})
	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.Equal(http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(apiErr.Error(), "Contact is required")
}

func TestAPIErrorListShape(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"message":"first"},{"message":"second"}]}`))
	}))
	defer srv.Close()

	err := testClient(srv).Get(context.Background(), "widgets/1", nil, &struct{}{})
	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.Contains(apiErr.Error(), "first; second")
}

func TestThrottledResponse(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"errors":{"error":{"message":"Rate limit exceeded"}}}`))
	}))
	defer srv.Close()

	err := testClient(srv).Get(context.Background(), "widgets", nil, &struct{}{})
	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.True(apiErr.IsThrottled())
	assert.NotNil(apiErr.Ratelimit)
}

func TestDeleteNoContent(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("DELETE", r.Method)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	assert.NoError(testClient(srv).Delete(context.Background(), "widgets/1"))
}
