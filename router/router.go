// Package router maps URL paths to root components.
//
// Patterns are literal paths with optional "{name}" segments, e.g.
// "/exercise/06/{name}". The matched values are passed to the route's
// factory. Browser history integration lives in router_js.go; natively the
// Router is used to resolve paths for static rendering.
package router

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vcrobe/nojs-effects/console"
	"github.com/vcrobe/nojs-effects/runtime"
)

// Route binds a path pattern to the factory of its root component.
type Route struct {
	Path    string
	Factory runtime.ComponentFactory
}

// Router resolves paths to components and notifies a host on navigation.
// It implements runtime.NavigationManager.
type Router struct {
	mu          sync.Mutex
	routes      []Route
	notFound    func(path string) runtime.Component
	currentPath string
	onChange    func(comp runtime.Component, key string)
	pushState   func(path string)
}

// Compile-time assertion to ensure Router implements runtime.NavigationManager.
var _ runtime.NavigationManager = (*Router)(nil)

// New returns a Router with no routes.
func New() *Router {
	return &Router{}
}

// Handle registers factory for pattern. Earlier registrations win when more
// than one pattern matches.
func (r *Router) Handle(pattern string, factory runtime.ComponentFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, Route{Path: pattern, Factory: factory})
}

// HandleNotFound sets the component shown for unmatched paths.
func (r *Router) HandleNotFound(fn func(path string) runtime.Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = fn
}

// OnChange sets the callback run after each successful navigation with the
// new root component and a key identifying the route instance.
func (r *Router) OnChange(fn func(comp runtime.Component, key string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Resolve returns a new root component for path together with its key. ok
// is false when no route matched; comp is then the not-found component, if
// one is registered.
func (r *Router) Resolve(path string) (comp runtime.Component, key string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(path)
}

func (r *Router) resolve(path string) (runtime.Component, string, bool) {
	for _, route := range r.routes {
		if matchesPattern(route.Path, path) {
			return route.Factory(extractParams(route.Path, path)), "route:" + normalize(path), true
		}
	}
	if r.notFound != nil {
		return r.notFound(path), "notfound:" + normalize(path), false
	}
	return nil, "", false
}

// Navigate resolves path, records it in the history (in the browser) and
// hands the new root to the OnChange callback.
func (r *Router) Navigate(path string) error {
	return r.navigate(path, true)
}

func (r *Router) navigate(path string, push bool) error {
	r.mu.Lock()
	comp, key, ok := r.resolve(path)
	if comp == nil {
		r.mu.Unlock()
		console.Error("[Router] No route found for path:", path)
		return fmt.Errorf("no route for path: %s", path)
	}
	if !ok {
		console.Warn("[Router] Showing not-found page for:", path)
	}
	r.currentPath = path
	onChange, pushState := r.onChange, r.pushState
	r.mu.Unlock()

	if push && pushState != nil {
		pushState(path)
	}
	if onChange != nil {
		onChange(comp, key)
	}
	return nil
}

// CurrentPath returns the path of the last navigation.
func (r *Router) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentPath
}

func normalize(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// matchesPattern checks if an actual path matches a route pattern.
func matchesPattern(pattern, path string) bool {
	pattern, path = normalize(pattern), normalize(path)
	if pattern == path {
		return true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if isParam(patternParts[i]) {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}

// extractParams parses URL parameters from a path based on route pattern.
func extractParams(pattern, path string) map[string]string {
	patternParts := strings.Split(strings.Trim(normalize(pattern), "/"), "/")
	pathParts := strings.Split(strings.Trim(normalize(path), "/"), "/")

	params := make(map[string]string)
	for i := range patternParts {
		if i >= len(pathParts) {
			break
		}
		if isParam(patternParts[i]) {
			params[strings.Trim(patternParts[i], "{}")] = pathParts[i]
		}
	}
	return params
}

func isParam(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
