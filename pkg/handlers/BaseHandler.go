// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"io"
	"net/http"
)

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/viper"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/catalog"
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/schema"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

type BaseHandler struct {
	Viper           *viper.Viper
	Catalog         *catalog.PortalCatalog
	Requests        chan request.Request
	Messages        chan interface{}
	Errors          chan interface{}
	AwsSessionCache *gocache.Cache
	Debug           bool
	GitBranch       string
	GitCommit       string
}

func (h *BaseHandler) SendDebug(message interface{}) {
	if h.Debug {
		h.Messages <- message
	}
}

func (h *BaseHandler) SendInfo(message interface{}) {
	h.Messages <- message
}

func (h *BaseHandler) SendError(message interface{}) {
	h.Errors <- message
}

// GetAWSS3Client returns an S3 client, reusing a cached AWS session when
// one exists for the configured credentials.
func (h *BaseHandler) GetAWSS3Client() (*s3.S3, error) {

	awsAccessKeyId := h.Viper.GetString("aws-access-key-id")
	awsSessionToken := h.Viper.GetString("aws-session-token")

	awsSessionId := awsAccessKeyId
	if len(awsSessionId) == 0 {
		awsSessionId = "AWS"
	}

	if obj, found := h.AwsSessionCache.Get(awsSessionId); found {
		return s3.New(obj.(*session.Session)), nil
	}

	awsSession, err := util.ConnectToAWS(
		awsAccessKeyId,
		h.Viper.GetString("aws-secret-access-key"),
		awsSessionToken,
		h.Viper.GetString("aws-default-region"))
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to AWS")
	}
	h.AwsSessionCache.Set(awsSessionId, awsSession, gocache.DefaultExpiration)
	return s3.New(awsSession), nil
}

func (h *BaseHandler) DeserializeBytes(inputBytes []byte, inputFormat string) (interface{}, error) {
	object, err := gss.DeserializeBytes(&gss.DeserializeBytesInput{
		Bytes:         inputBytes,
		Format:        inputFormat,
		Header:        gss.NoHeader,
		Comment:       gss.NoComment,
		LazyQuotes:    false,
		SkipLines:     gss.NoSkip,
		Limit:         gss.NoLimit,
		LineSeparator: "\n",
	})
	if err != nil {
		return nil, errors.Wrap(err, "error deserializing input using format "+inputFormat)
	}
	return object, nil
}

func (h *BaseHandler) ParseBody(r *http.Request, format string) (interface{}, error) {
	inputBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading request body")
	}
	inputObject, err := h.DeserializeBytes(inputBytes, format)
	if err != nil {
		return nil, errors.Wrap(err, "error deserializing body")
	}
	return inputObject, nil
}

/* #nosec */
func (h *BaseHandler) RespondWithObject(resp *Response) error {

	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            resp.Object,
		Format:            resp.Format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            resp.Pretty,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return errors.Wrap(err, "error serializing response body")
	}

	contentType := ""
	switch resp.Format {
	case "bson":
		contentType = "application/ubjson"
	case "json":
		contentType = "application/json"
	case "toml":
		contentType = "application/toml"
	case "yaml", "yml":
		contentType = "text/yaml"
	default:
		contentType = "text/plain; charset=utf-8"
	}

	if len(resp.Filename) > 0 {
		resp.Writer.Header().Set("Content-Disposition", "attachment; filename="+resp.Filename)
	}

	resp.Writer.Header().Set("Content-Type", contentType)
	if resp.StatusCode != http.StatusOK {
		resp.Writer.WriteHeader(resp.StatusCode)
	}
	resp.Writer.Write(b)
	return nil
}

func (h *BaseHandler) RespondWithError(w http.ResponseWriter, err error, format string) error {

	switch cause := errors.Cause(err).(type) {
	case *rerrors.ErrMissingObject:
		w.WriteHeader(http.StatusNotFound)
	case *rerrors.ErrMissingRequiredParameter:
		w.WriteHeader(http.StatusBadRequest)
	case *rerrors.ErrInvalidParameter:
		w.WriteHeader(http.StatusBadRequest)
	case *rerrors.ErrInvalidObject:
		w.WriteHeader(http.StatusBadRequest)
	case schema.Violations:
		b, serr := gss.SerializeBytes(&gss.SerializeBytesInput{
			Object:            map[string]interface{}{"success": false, "violations": cause.Maps()},
			Format:            format,
			Header:            gss.NoHeader,
			Limit:             gss.NoLimit,
			Pretty:            false,
			LineSeparator:     "\n",
			KeyValueSeparator: "=",
		})
		if serr != nil {
			return serr
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write(b) // #nosec
		return nil
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	b, serr := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            map[string]interface{}{"success": false, "error": err.Error()},
		Format:            format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            false,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if serr != nil {
		return serr
	}
	w.Write(b) // #nosec
	return nil
}

func (h *BaseHandler) RespondWithNotImplemented(w http.ResponseWriter, format string) error {
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            map[string]interface{}{"success": false, "error": "not implemented"},
		Format:            format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            false,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusNotImplemented)
	w.Write(b) // #nosec
	return nil
}

func (h *BaseHandler) RespondWithBadRequest(w http.ResponseWriter, format string) error {
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            map[string]interface{}{"success": false, "error": "bad request"},
		Format:            format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            false,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusBadRequest)
	w.Write(b) // #nosec
	return nil
}
