// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package router

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
	"github.com/spf13/viper"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/catalog"
	"github.com/sopheayat/slms-geo-portal/pkg/handlers"
	"github.com/sopheayat/slms-geo-portal/pkg/middleware"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
)

type PortalRouter struct {
	*Router
	Viper   *viper.Viper
	Catalog *catalog.PortalCatalog
}

type NewPortalRouterInput struct {
	Viper           *viper.Viper
	Catalog         *catalog.PortalCatalog
	Requests        chan request.Request
	Messages        chan interface{}
	ErrorsChannel   chan interface{}
	AwsSessionCache *gocache.Cache
	GitBranch       string
	GitCommit       string
	Logger          *gsl.Logger
}

func NewPortalRouter(input *NewPortalRouterInput) *PortalRouter {

	v := input.Viper

	r := &PortalRouter{
		Viper:   v,
		Catalog: input.Catalog,
		Router:  NewRouter(input.Requests, input.Messages, input.ErrorsChannel, input.AwsSessionCache),
	}

	r.Use(middleware.RecoverMiddleware(input.Logger))
	r.Use(middleware.RequestMiddleware())
	r.Use(middleware.LogMiddleware(input.Logger))

	if v.GetBool("http-middleware-cors") {
		r.Use(middleware.CorsMiddleware(v.GetString("cors-origin"), v.GetString("cors-credentials")))
	}

	r.AddObjectHandler("health", "/health.{ext}", map[string]interface{}{"status": "ok"})

	r.AddObjectHandler("version", "/version.{ext}", map[string]interface{}{
		"branch": input.GitBranch,
		"commit": input.GitCommit,
	})

	r.AddConfigHandler("config", "/config.{ext}")
	r.AddSaveHandler("config_save", "/config/save.{ext}")

	r.AddGroupHandler("groups", "/groups.{ext}")
	r.AddGroupHandler("group", "/groups/{id}.{ext}")

	r.AddContextHandler("contexts", "/contexts.{ext}")
	r.AddContextHandler("context", "/contexts/{id}.{ext}")
	r.AddToggleContextHandler("context_toggle", "/contexts/{id}/toggle.{ext}")
	r.AddContextTimeHandler("context_time", "/contexts/{id}/time.{ext}")

	r.AddItemHandler("item", "/items/{id}.{ext}")
	r.AddEditHandler("item_edit", "/items/{id}/edit.{ext}")
	r.AddMoveItemHandler("item_move", "/items/{id}/move.{ext}")

	r.AddLayersHandler("layers", "/layers.{ext}")
	r.AddActiveLayersHandler("layers_active", "/layers/active.{ext}", false)
	r.AddActiveLayersHandler("layers_queryable", "/layers/queryable.{ext}", true)

	return r
}

func (r *PortalRouter) NewBaseHandler() *handlers.BaseHandler {
	return &handlers.BaseHandler{
		Viper:           r.Viper,
		Catalog:         r.Catalog,
		Requests:        r.Requests,
		Messages:        r.Messages,
		Errors:          r.Errors,
		AwsSessionCache: r.AwsSessionCache,
		Debug:           r.Viper.GetBool("verbose"),
	}
}

func (r *PortalRouter) AddObjectHandler(name string, path string, object interface{}) {
	r.Methods("GET").Name(name).Path(path).Handler(&handlers.ObjectHandler{
		Object:      object,
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddConfigHandler(name string, path string) {
	r.Methods("GET", "POST", "OPTIONS").Name(name).Path(path).Handler(&handlers.ConfigHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddSaveHandler(name string, path string) {
	r.Methods("POST", "OPTIONS").Name(name).Path(path).Handler(&handlers.SaveHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddGroupHandler(name string, path string) {
	r.Methods("POST", "PUT", "OPTIONS").Name(name).Path(path).Handler(&handlers.GroupHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddContextHandler(name string, path string) {
	r.Methods("POST", "PUT", "OPTIONS").Name(name).Path(path).Handler(&handlers.ContextHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddToggleContextHandler(name string, path string) {
	r.Methods("POST", "OPTIONS").Name(name).Path(path).Handler(&handlers.ToggleContextHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddContextTimeHandler(name string, path string) {
	r.Methods("PUT", "OPTIONS").Name(name).Path(path).Handler(&handlers.ContextTimeHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddItemHandler(name string, path string) {
	r.Methods("DELETE", "OPTIONS").Name(name).Path(path).Handler(&handlers.ItemHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddEditHandler(name string, path string) {
	r.Methods("POST", "OPTIONS").Name(name).Path(path).Handler(&handlers.EditHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddMoveItemHandler(name string, path string) {
	r.Methods("POST", "OPTIONS").Name(name).Path(path).Handler(&handlers.MoveItemHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddLayersHandler(name string, path string) {
	r.Methods("GET", "PUT", "OPTIONS").Name(name).Path(path).Handler(&handlers.LayersHandler{
		BaseHandler: r.NewBaseHandler(),
	})
}

func (r *PortalRouter) AddActiveLayersHandler(name string, path string, queryable bool) {
	r.Methods("GET").Name(name).Path(path).Handler(&handlers.ActiveLayersHandler{
		Queryable:   queryable,
		BaseHandler: r.NewBaseHandler(),
	})
}
