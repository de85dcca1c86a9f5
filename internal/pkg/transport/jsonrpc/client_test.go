package jsonrpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}

		assert.NoError(t, resp.Err())
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		expectedCode := -32601
		expectedMsg := "method not found"

		resp := response{
			JsonRPC: "2.0",
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}{
				Code:    expectedCode,
				Message: expectedMsg,
			},
		}

		err := resp.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), fmt.Sprintf("[%d]", expectedCode))
		assert.Contains(t, err.Error(), expectedMsg)
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("sends a well-formed request and returns the raw result", func(t *testing.T) {
		var received request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      received.ID,
				"result":  "0x10",
			})
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		result, err := c.Fetch(t.Context(), "eth_blockNumber")
		require.NoError(t, err)
		assert.JSONEq(t, `"0x10"`, string(result))

		assert.Equal(t, "2.0", received.JsonRPC)
		assert.Equal(t, "eth_blockNumber", received.Method)
		assert.NotEmpty(t, received.ID)
		assert.Empty(t, received.Params)
	})

	t.Run("marshals positional parameters", func(t *testing.T) {
		var received request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": nil})
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		_, err := c.Fetch(t.Context(), "eth_getBlockByNumber", "0x1", true)
		require.NoError(t, err)
		assert.Equal(t, []any{"0x1", true}, received.Params)
	})

	t.Run("surfaces a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32000, "message": "header not found"},
			})
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		_, err := c.Fetch(t.Context(), "eth_getBlockByNumber", "0xffffffff", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
	})

	t.Run("fails when the endpoint is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := NewClient(http.DefaultClient, server.URL)

		_, err := c.Fetch(t.Context(), "eth_blockNumber")
		require.Error(t, err)
	})

	t.Run("fails on a malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "not json")
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		_, err := c.Fetch(t.Context(), "eth_blockNumber")
		require.Error(t, err)
	})
}
