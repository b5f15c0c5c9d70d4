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
	"github.com/sopheayat/slms-geo-portal/pkg/schema"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// ConfigHandler serves the full configuration document.  GET dumps the
// live catalog, POST validates the request body against the schema and
// replaces the catalog state when the document is accepted.
type ConfigHandler struct {
	*BaseHandler
}

func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	switch r.Method {
	case "GET":
		err := h.RespondWithObject(&Response{
			Writer:     w,
			StatusCode: http.StatusOK,
			Format:     format,
			Object:     h.Catalog.Dump(r.Context()),
			Pretty:     pretty,
		})
		if err != nil {
			h.SendError(err)
			err = h.RespondWithError(w, err, format)
			if err != nil {
				panic(err)
			}
		}
	case "POST":
		obj, err := h.Post(w, r, format)
		if err != nil {
			h.SendError(err)
			err = h.RespondWithError(w, err, format)
			if err != nil {
				panic(err)
			}
		} else {
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
	case "OPTIONS":
	default:
		err := h.RespondWithNotImplemented(w, format)
		if err != nil {
			panic(err)
		}
	}

}

func (h *ConfigHandler) Post(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {

	body, err := h.ParseBody(r, format)
	if err != nil {
		return nil, err
	}

	if violations := schema.Validate(body); len(violations) > 0 {
		return nil, violations
	}

	if err := h.Catalog.LoadFromDocument(body); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success":  true,
		"layers":   len(h.Catalog.Layers()),
		"contexts": len(h.Catalog.Contexts()),
	}, nil
}
