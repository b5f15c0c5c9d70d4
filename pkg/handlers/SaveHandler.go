// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
	"strings"
)

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/catalog"
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// SaveHandler persists the live catalog to the configured catalog uri.
type SaveHandler struct {
	*BaseHandler
}

func (h *SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	qs := request.NewQueryString(r)
	pretty, _ := qs.FirstBool("pretty")

	_, format, _ := util.SplitNameFormatCompression(r.URL.Path)

	switch r.Method {
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

func (h *SaveHandler) Post(w http.ResponseWriter, r *http.Request, format string) (interface{}, error) {

	catalogUri := h.Viper.GetString("catalog-uri")
	if len(catalogUri) == 0 {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: "catalog-uri"}
	}

	var s3Client *s3.S3
	if strings.HasPrefix(catalogUri, "s3://") {
		client, err := h.GetAWSS3Client()
		if err != nil {
			return nil, errors.Wrap(err, "error connecting to AWS")
		}
		s3Client = client
	}

	err := h.Catalog.SaveToUri(&catalog.SaveToUriInput{
		Uri:      catalogUri,
		Pretty:   h.Viper.GetBool("catalog-pretty"),
		S3Client: s3Client,
	})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"success": true, "uri": catalogUri}, nil
}
