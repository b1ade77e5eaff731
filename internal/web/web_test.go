package web_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"heapvis/global"
	"heapvis/internal/config"
	"heapvis/internal/core"
	"heapvis/internal/web"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newServer(t *testing.T, token string) http.Handler {
	t.Helper()

	c := core.New(config.Default())
	t.Cleanup(c.Close)

	return web.New(c, token, false)
}

func call(t *testing.T, h http.Handler, token, method string, params any) (int, rpcResponse) {
	t.Helper()

	body := lo.Must(json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	}))

	req := httptest.NewRequest(http.MethodPost, "/json_rpc", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var res rpcResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	return w.Code, res
}

func createSession(t *testing.T, h http.Handler, polarity string) string {
	t.Helper()

	code, res := call(t, h, "", "heap.create", map[string]any{"polarity": polarity})
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, res.Error)

	var out struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(res.Result, &out))
	require.NotEmpty(t, out.SessionID)

	return out.SessionID
}

func TestRPCFlow(t *testing.T) {
	t.Parallel()

	h := newServer(t, "")
	id := createSession(t, h, "min")

	code, res := call(t, h, "", "heap.build", map[string]any{
		"session_id": id,
		"values":     "10, 20, 15, 30, 40,1,6,55,90,87",
	})
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, res.Error)

	var built struct {
		Input  []int64 `json:"input"`
		Frames []struct {
			Elements []int64 `json:"elements"`
			Swapped  *[2]int `json:"swapped"`
			Dot      string  `json:"dot"`
		} `json:"frames"`
	}
	require.NoError(t, json.Unmarshal(res.Result, &built))
	require.Len(t, built.Input, 10)
	require.NotEmpty(t, built.Frames)
	require.Nil(t, built.Frames[0].Swapped)
	require.Contains(t, built.Frames[0].Dot, "digraph")

	code, res = call(t, h, "", "heap.deleteRoot", map[string]any{"session_id": id})
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, res.Error)

	var deleted struct {
		Root int64 `json:"root"`
		Size int   `json:"size"`
	}
	require.NoError(t, json.Unmarshal(res.Result, &deleted))
	require.EqualValues(t, 1, deleted.Root)
	require.Equal(t, 9, deleted.Size)
}

func TestRPCErrorCodes(t *testing.T) {
	t.Parallel()

	h := newServer(t, "")

	// malformed manual input never reaches the heap
	id := createSession(t, h, "min")
	code, res := call(t, h, "", "heap.build", map[string]any{
		"session_id": id,
		"values":     "1, two, 3",
	})
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, res.Error)
	require.Equal(t, 1, res.Error.Code)

	// unknown session
	_, res = call(t, h, "", "heap.snapshot", map[string]any{"session_id": "missing"})
	require.NotNil(t, res.Error)
	require.Equal(t, 2, res.Error.Code)

	// delete on a fresh empty heap is a warning code
	_, res = call(t, h, "", "heap.deleteRoot", map[string]any{"session_id": id})
	require.NotNil(t, res.Error)
	require.Equal(t, 3, res.Error.Code)
}

// Omitted random bounds fall back to the configured 1..100 range even when
// a size is given, and extreme bounds are served rather than panicking.
func TestRPCRandomBuild(t *testing.T) {
	t.Parallel()

	h := newServer(t, "")
	id := createSession(t, h, "max")

	code, res := call(t, h, "", "heap.build", map[string]any{
		"session_id": id,
		"random":     map[string]any{"size": 5},
	})
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, res.Error)

	var built struct {
		Input []int64 `json:"input"`
	}
	require.NoError(t, json.Unmarshal(res.Result, &built))
	require.Len(t, built.Input, 5)
	for _, v := range built.Input {
		require.GreaterOrEqual(t, v, int64(1))
		require.LessOrEqual(t, v, int64(100))
	}

	code, res = call(t, h, "", "heap.build", map[string]any{
		"session_id": id,
		"random":     map[string]any{"size": 5, "min": math.MinInt64, "max": math.MaxInt64},
	})
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, res.Error)
	require.NoError(t, json.Unmarshal(res.Result, &built))
	require.Len(t, built.Input, 5)
}

func TestAuthToken(t *testing.T) {
	t.Parallel()

	h := newServer(t, "sekret")

	code, res := call(t, h, "", "heap.stat", map[string]any{})
	require.Equal(t, 401, code)
	require.NotNil(t, res.Error)
	require.Equal(t, 401, res.Error.Code)

	code, res = call(t, h, "sekret", "heap.stat", map[string]any{})
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, res.Error)
}

func TestServerHeader(t *testing.T) {
	t.Parallel()

	h := newServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, global.UserAgent, w.Header().Get(echo.HeaderServer))
}
