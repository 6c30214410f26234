package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newEcho(name string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(name + ":" + r.URL.Path))
	}))
}

func TestGatewayRoutesByPrefix(t *testing.T) {
	req := require.New(t)

	auth := newEcho("auth")
	defer auth.Close()
	chats := newEcho("chats")
	defer chats.Close()

	gw, err := New([]Route{
		{Prefix: "/api/auth", Upstream: auth.URL},
		{Prefix: "/api/chats", Upstream: chats.URL},
	}, nil)
	req.NoError(err)

	edge := httptest.NewServer(gw)
	defer edge.Close()

	res, err := http.Get(edge.URL + "/api/auth/login")
	req.NoError(err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	req.Equal("auth:/api/auth/login", string(body))

	res, err = http.Get(edge.URL + "/api/chats")
	req.NoError(err)
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	req.Equal("chats:/api/chats", string(body))
}

func TestGatewayCORSPreflight(t *testing.T) {
	req := require.New(t)

	gw, err := New(nil, nil)
	req.NoError(err)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/api/chats", nil)
	gw.ServeHTTP(rec, r)

	req.Equal(http.StatusNoContent, rec.Code)
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	req.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestGatewayUpstreamDown(t *testing.T) {
	req := require.New(t)

	gw, err := New([]Route{
		{Prefix: "/api/users", Upstream: "http://127.0.0.1:1"},
	}, nil)
	req.NoError(err)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	gw.ServeHTTP(rec, r)

	req.Equal(http.StatusBadGateway, rec.Code)
	req.Contains(rec.Body.String(), "upstream unavailable")
}

func TestGatewayRejectsBadUpstream(t *testing.T) {
	_, err := New([]Route{{Prefix: "/api/auth", Upstream: "://bad"}}, nil)
	require.Error(t, err)
}
