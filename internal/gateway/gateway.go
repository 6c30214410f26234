package gateway

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"chat-platform/pkg/logger"
)

// Route maps a path prefix to an upstream service.
type Route struct {
	Prefix   string
	Upstream string
}

// Gateway is the single public entry point. It proxies each path prefix to
// its owning service and applies CORS at the edge; everything behind it
// stays on the private network.
type Gateway struct {
	mux *http.ServeMux
	log *logger.Logger
}

func New(routes []Route, l *logger.Logger) (*Gateway, error) {
	mux := http.NewServeMux()

	for _, route := range routes {
		target, err := url.Parse(route.Upstream)
		if err != nil {
			return nil, fmt.Errorf("invalid upstream %q for %s: %w", route.Upstream, route.Prefix, err)
		}

		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			if l != nil {
				l.Errorf("proxy to %s failed: %s", target.Host, err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"result":null,"isSuccess":false,"message":"upstream unavailable"}`))
		}

		prefix := strings.TrimSuffix(route.Prefix, "/")
		mux.Handle(prefix+"/", proxy)
		mux.Handle(prefix, proxy)
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"status":"healthy"},"isSuccess":true,"message":""}`))
	})

	return &Gateway{mux: mux, log: l}, nil
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withCORS(g.mux).ServeHTTP(w, r)
}

// withCORS handles preflight and tags every response; the gateway is the
// only place CORS lives.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
