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

// GroupHandler creates new groups (POST, with an optional parent query
// string parameter) and saves the editable attributes of an existing
// group (PUT on /groups/{id}).
type GroupHandler struct {
	*BaseHandler
}

func (h *GroupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	var obj interface{}
	var err error
	switch r.Method {
	case "POST":
		obj, err = h.Post(w, r, format, qs)
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

func (h *GroupHandler) Post(w http.ResponseWriter, r *http.Request, format string, qs request.QueryString) (interface{}, error) {

	parentId := 0
	if v, err := qs.FirstInt("parent"); err == nil {
		parentId = v
	}

	group := h.Catalog.AddGroup(parentId)
	return map[string]interface{}{"success": true, "object": group.Map(r.Context())}, nil
}

func (h *GroupHandler) Put(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {

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
		return nil, errors.Wrap(err, "error parsing group labels")
	}

	err = h.Catalog.SaveGroup(&catalog.SaveGroupInput{
		Id:        id,
		Label:     gtg.TryGetString(body, "label", ""),
		Labels:    labels,
		InfoFile:  gtg.TryGetString(body, "infoFile", ""),
		Exclusive: gtg.TryGetBool(body, "exclusive", false),
	})
	if err != nil {
		return nil, err
	}

	node, _ := h.Catalog.FindItem(id)
	return map[string]interface{}{"success": true, "object": node.Map(r.Context())}, nil
}
