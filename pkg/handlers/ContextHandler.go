// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
	"strconv"
)

import (
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-try-get/pkg/gtg"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/catalog"
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/parser"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// ContextHandler creates new contexts (POST) and saves the editable
// attributes of an existing context (PUT on /contexts/{id}).  Saving a
// context re-resolves its layer references against the live layer
// catalog and silently drops ids that no longer resolve.
type ContextHandler struct {
	*BaseHandler
}

func (h *ContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	var obj interface{}
	var err error
	switch r.Method {
	case "POST":
		obj, err = h.Post(w, r, format)
	case "PUT":
		obj, err = h.Put(w, r, format)
	case "OPTIONS":
		return
	default:
		err := h.RespondWithNotImplemented(w, format)
		if err != nil {
			panic(err)
		}
		return
	}

	if err != nil {
		h.SendError(err)
		err = h.RespondWithError(w, err, format)
		if err != nil {
			panic(err)
		}
		return
	}

	err = h.RespondWithObject(&Response{
		Writer:     w,
		StatusCode: http.StatusOK,
		Format:     format,
		Object:     obj,
		Pretty:     pretty,
	})
	if err != nil {
		h.SendError(err)
		err = h.RespondWithError(w, err, format)
		if err != nil {
			panic(err)
		}
	}

}

func (h *ContextHandler) Post(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {
	context := h.Catalog.AddContext()
	return map[string]interface{}{"success": true, "object": context.Map(r.Context())}, nil
}

func (h *ContextHandler) Put(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return nil, &rerrors.ErrInvalidParameter{Name: "id", Value: vars["id"]}
	}

	body, err := h.ParseBody(r, format)
	if err != nil {
		return nil, err
	}

	labels, err := parser.ParseStringMap(body, "labels")
	if err != nil {
		return nil, errors.Wrap(err, "error parsing context labels")
	}

	layerIds, err := parser.ParseIntArray(body, "layers")
	if err != nil {
		return nil, errors.Wrap(err, "error parsing context layers")
	}

	err = h.Catalog.SaveContext(&catalog.SaveContextInput{
		Id:              id,
		Label:           gtg.TryGetString(body, "label", ""),
		Labels:          labels,
		InfoFile:        gtg.TryGetString(body, "infoFile", ""),
		InlineLegendUrl: gtg.TryGetString(body, "inlineLegendUrl", ""),
		Active:          gtg.TryGetBool(body, "active", false),
		LayerIds:        layerIds,
	})
	if err != nil {
		return nil, err
	}

	context, _ := h.Catalog.Context(id)
	return map[string]interface{}{"success": true, "object": context.Map(r.Context())}, nil
}
