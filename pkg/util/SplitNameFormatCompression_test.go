// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNameFormatCompression(t *testing.T) {

	name, format, compression := SplitNameFormatCompression("/config.json")
	assert.Equal(t, "/config", name)
	assert.Equal(t, "json", format)
	assert.Equal(t, "", compression)

	name, format, compression = SplitNameFormatCompression("catalog.yaml.gz")
	assert.Equal(t, "catalog", name)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "gzip", compression)

	name, format, compression = SplitNameFormatCompression("catalog.toml.sz")
	assert.Equal(t, "catalog", name)
	assert.Equal(t, "toml", format)
	assert.Equal(t, "snappy", compression)

	name, format, compression = SplitNameFormatCompression("catalog.json.bz2")
	assert.Equal(t, "catalog", name)
	assert.Equal(t, "json", format)
	assert.Equal(t, "bzip2", compression)

	name, format, compression = SplitNameFormatCompression("/contexts/5/toggle.json")
	assert.Equal(t, "/contexts/5/toggle", name)
	assert.Equal(t, "json", format)
	assert.Equal(t, "", compression)

	name, format, compression = SplitNameFormatCompression("catalog")
	assert.Equal(t, "catalog", name)
	assert.Equal(t, "", format)
	assert.Equal(t, "", compression)
}
