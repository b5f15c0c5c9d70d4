// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/serializer"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

type SaveToUriInput struct {
	Uri         string
	Format      string
	Compression string
	Pretty      bool
	S3Client    *s3.S3
}

// SaveToUri serializes the catalog back to the document shape and writes
// it to the given uri.
func (c *PortalCatalog) SaveToUri(input *SaveToUriInput) error {

	format := input.Format
	compression := input.Compression
	if len(format) == 0 {
		_, format, compression = util.SplitNameFormatCompression(input.Uri)
	}

	err := serializer.New(format, compression, grw.NoDict).
		Pretty(input.Pretty).
		S3Client(input.S3Client).
		Serialize(input.Uri, c.Dump(nil))
	if err != nil {
		return errors.Wrapf(err, "error saving configuration to uri %q", input.Uri)
	}
	return nil
}
