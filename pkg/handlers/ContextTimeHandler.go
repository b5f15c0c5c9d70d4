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

	"github.com/spatialcurrent/go-try-get/pkg/gtg"
)

import (
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// ContextTimeHandler sets the currently selected time of the context
// with the given id.  The value is taken from the value query string
// parameter or from the request body.
type ContextTimeHandler struct {
	*BaseHandler
}

func (h *ContextTimeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	switch r.Method {
	case "PUT":
		obj, err := h.Put(w, r, format, qs)
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

func (h *ContextTimeHandler) Put(w http.ResponseWriter, r *http.Request, format string, qs request.QueryString) (interface{}, error) {

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return nil, &rerrors.ErrInvalidParameter{Name: "id", Value: vars["id"]}
	}

	if _, ok := h.Catalog.Context(id); !ok {
		return nil, &rerrors.ErrMissingObject{Type: "context", Id: id}
	}

	value, err := qs.FirstString("value")
	if err != nil {
		body, err := h.ParseBody(r, format)
		if err != nil {
			return nil, err
		}
		value = gtg.TryGetString(body, "value", "")
	}
	if len(value) == 0 {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: "value"}
	}

	h.Catalog.SetContextTime(id, value)

	current, _ := h.Catalog.ContextTime(id)
	return map[string]interface{}{"success": true, "id": id, "time": current}, nil
}
