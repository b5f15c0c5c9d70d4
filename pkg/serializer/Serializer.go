// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serializer

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
)

// Serializer reads and writes objects at URIs (file, stdin/stdout, or S3)
// in any gss-supported format, with optional compression.
type Serializer struct {
	format   string
	alg      string
	dict     []byte
	pretty   bool
	s3Client *s3.S3
}

// New returns a new serializer with the given format and compression
// algorithm.
func New(format string, alg string, dict []byte) *Serializer {
	return &Serializer{
		format: format,
		alg:    alg,
		dict:   dict,
	}
}

// Pretty toggles pretty printing of the output.
func (s *Serializer) Pretty(pretty bool) *Serializer {
	s.pretty = pretty
	return s
}

// S3Client sets the S3 client used for s3:// uris.
func (s *Serializer) S3Client(s3Client *s3.S3) *Serializer {
	s.s3Client = s3Client
	return s
}

// Deserialize reads the object at the given uri.
func (s *Serializer) Deserialize(uri string) (interface{}, error) {
	b, err := grw.ReadAllAndClose(&grw.ReadAllAndCloseInput{
		Uri:        uri,
		Alg:        s.alg,
		Dict:       s.dict,
		BufferSize: grw.DefaultBufferSize,
		S3Client:   s.s3Client,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error reading from uri %q", uri)
	}
	if len(b) == 0 {
		return nil, nil
	}
	object, err := gss.DeserializeBytes(&gss.DeserializeBytesInput{
		Bytes:         b,
		Format:        s.format,
		Header:        gss.NoHeader,
		Comment:       gss.NoComment,
		LazyQuotes:    false,
		SkipLines:     gss.NoSkip,
		Limit:         gss.NoLimit,
		LineSeparator: "\n",
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error deserializing %s from uri %q", s.format, uri)
	}
	return object, nil
}

// Serialize writes the object to the given uri.
func (s *Serializer) Serialize(uri string, object interface{}) error {
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            object,
		Format:            s.format,
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		Pretty:            s.pretty,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
	})
	if err != nil {
		return errors.Wrapf(err, "error serializing %s for uri %q", s.format, uri)
	}
	err = grw.WriteAllAndClose(&grw.WriteAllAndCloseInput{
		Bytes:    b,
		Uri:      uri,
		Alg:      s.alg,
		Dict:     s.dict,
		S3Client: s.s3Client,
	})
	if err != nil {
		return errors.Wrapf(err, "error writing to uri %q", uri)
	}
	return nil
}
