package router

import "github.com/gin-gonic/gin"

// Registry collects group middleware and feature modules, then mounts them
// on a single base group.
type Registry struct {
	Engine      *gin.Engine
	Base        *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine, basePath string) *Registry {
	return &Registry{Engine: engine, Base: engine.Group(basePath)}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.Base.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.Base)
	}
}
