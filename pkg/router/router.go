// Package router is a small method+path router over net/http with wildcard
// segments and a colorized request log line per request.
package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type Router struct {
	routes  map[string]HandlerFunc // key = METHOD:PATH, PATH may contain "*"
	paths   map[string]bool
	mounted map[string]http.Handler // prefix-mounted handlers (swagger UI, downloads)
}

func New() *Router {
	return &Router{
		routes:  make(map[string]HandlerFunc),
		paths:   make(map[string]bool),
		mounted: make(map[string]http.Handler),
	}
}

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes[method+":"+path] = handler
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)    { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)   { r.register(http.MethodPost, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) { r.register(http.MethodDelete, path, handler) }

// Mount serves every request under prefix with h (used for the swagger UI
// and exported report downloads). Mounted prefixes win over wildcard routes.
func (r *Router) Mount(prefix string, h http.Handler) {
	r.mounted[prefix] = h
}

// ServeHTTP dispatches: exact route, then mounted prefix, then wildcard
// routes in registration-independent order, logging every request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	r.dispatch(lrw, req)

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	if h, ok := r.routes[req.Method+":"+req.URL.Path]; ok {
		h(w, req)
		return
	}

	for prefix, h := range r.mounted {
		if strings.HasPrefix(req.URL.Path, prefix) {
			h.ServeHTTP(w, req)
			return
		}
	}

	// Among matching wildcard patterns the most literal one wins, so
	// /datasets/*/profile beats the catch-all /datasets/*.
	best, bestScore, pathMatched := "", -1, false
	for routePath := range r.paths {
		if !strings.Contains(routePath, "*") || !matchWildcard(req.URL.Path, routePath) {
			continue
		}
		pathMatched = true
		if _, ok := r.routes[req.Method+":"+routePath]; !ok {
			continue
		}
		if score := literalSegments(routePath); score > bestScore {
			best, bestScore = routePath, score
		}
	}
	if best != "" {
		r.routes[req.Method+":"+best](w, req)
		return
	}

	if pathMatched || r.paths[req.URL.Path] {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

// matchWildcard matches a request path against a pattern whose "*" segments
// each swallow exactly one path segment; a trailing "*" swallows the rest.
func matchWildcard(requestPath, pattern string) bool {
	reqSegs := strings.Split(strings.Trim(requestPath, "/"), "/")
	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")

	if patSegs[len(patSegs)-1] == "*" {
		if len(reqSegs) < len(patSegs)-1 {
			return false
		}
	} else if len(reqSegs) != len(patSegs) {
		return false
	}

	for i, ps := range patSegs {
		if ps == "*" {
			if i == len(patSegs)-1 {
				return true
			}
			continue
		}
		if i >= len(reqSegs) || reqSegs[i] != ps {
			return false
		}
	}
	return true
}

func literalSegments(pattern string) int {
	n := 0
	for _, s := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if s != "*" {
			n++
		}
	}
	return n
}

// Start runs the HTTP server; it only returns on fatal listen errors.
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
