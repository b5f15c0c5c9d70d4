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
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// ActiveLayersHandler lists the layers of the active contexts in
// context order, first occurrence wins.  With Queryable set only the
// layers carrying statistics are returned.
type ActiveLayersHandler struct {
	*BaseHandler
	Queryable bool
}

func (h *ActiveLayersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	switch r.Method {
	case "GET":
		layers := h.Catalog.ActiveLayers()
		if h.Queryable {
			layers = h.Catalog.QueryableLayers()
		}
		items := make([]map[string]interface{}, 0, len(layers))
		for _, layer := range layers {
			items = append(items, layer.Map(r.Context()))
		}
		err := h.RespondWithObject(&Response{
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     map[string]interface{}{"layers": items},
			Pretty:     pretty,
		})
		if err != nil {
			h.SendError(err)
			err = h.RespondWithError(w, err, format)
			if err != nil {
				panic(err)
			}
		}
	case "OPTIONS":
	default:
		err := h.RespondWithNotImplemented(w, format)
		if err != nil {
			panic(err)
		}
	}

}
