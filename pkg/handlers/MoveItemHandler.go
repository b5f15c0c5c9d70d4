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
)

import (
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// MoveItemHandler reparents the item with the given id into the target
// group at the requested position.  Moving a group into its own subtree
// is rejected as a no-op.
type MoveItemHandler struct {
	*BaseHandler
}

func (h *MoveItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	switch r.Method {
	case "POST":
		obj, err := h.Post(w, r, format, qs)
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

func (h *MoveItemHandler) Post(w http.ResponseWriter, r *http.Request, format string, qs request.QueryString) (interface{}, error) {

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return nil, &rerrors.ErrInvalidParameter{Name: "id", Value: vars["id"]}
	}

	groupId, err := qs.FirstInt("group")
	if err != nil {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: "group"}
	}

	position, err := qs.FirstInt("position")
	if err != nil {
		position = -1
	}

	if !h.Catalog.MoveItem(id, groupId, position) {
		return nil, &rerrors.ErrMissingObject{Type: "item", Id: id}
	}

	parent, _ := h.Catalog.ParentOf(id)
	return map[string]interface{}{"success": true, "id": id, "parent": parent.Id}, nil
}
