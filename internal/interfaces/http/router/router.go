package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

type mount struct {
	prefix    string
	registrar RouteRegistrar
}

// Router manages HTTP route registration under a versioned API prefix
type Router struct {
	engine     *gin.Engine
	apiVersion string
	mounts     []mount
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Mount attaches a registrar under a path prefix relative to the API root,
// e.g. Mount("/invoices", invoiceHandler)
func (r *Router) Mount(prefix string, registrar RouteRegistrar) *Router {
	r.mounts = append(r.mounts, mount{prefix: prefix, registrar: registrar})
	return r
}

// Setup registers all mounted routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, m := range r.mounts {
		m.registrar.RegisterRoutes(api.Group(m.prefix))
	}
}
