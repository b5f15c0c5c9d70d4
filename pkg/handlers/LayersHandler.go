// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// LayersHandler lists the layer catalog (GET) and replaces it wholesale
// (PUT).  Replacing the catalog re-resolves every context's layer
// references and recomputes the aggregated times.
type LayersHandler struct {
	*BaseHandler
}

func (h *LayersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	var obj interface{}
	var err error
	switch r.Method {
	case "GET":
		obj, err = h.Get(w, r, format)
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

func (h *LayersHandler) Get(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {
	layers := h.Catalog.Layers()
	items := make([]map[string]interface{}, 0, len(layers))
	for _, layer := range layers {
		items = append(items, layer.Map(r.Context()))
	}
	return map[string]interface{}{"layers": items}, nil
}

func (h *LayersHandler) Put(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {

	body, err := h.ParseBody(r, format)
	if err != nil {
		return nil, err
	}

	list, ok := body.([]interface{})
	if !ok {
		if m, ok := body.(map[string]interface{}); ok {
			if v, ok := m["layers"].([]interface{}); ok {
				list = v
			}
		}
	}
	if list == nil {
		return nil, &rerrors.ErrInvalidObject{Value: body}
	}

	layers := make([]core.Layer, 0, len(list))
	for i, obj := range list {
		layer, err := h.Catalog.ParseLayer(obj)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing layer %d", i)
		}
		layers = append(layers, layer)
	}

	h.Catalog.ReplaceLayers(layers)

	return map[string]interface{}{"success": true, "layers": len(h.Catalog.Layers())}, nil
}
