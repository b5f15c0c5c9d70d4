// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"path/filepath"
)

// SplitNameFormatCompression splits a filename into its basename, format,
// and compression.
//  - *.json => ("*", "json", "") // JSON File
//  - *.json.gz => ("*", "json", "gzip") // gzip-compressed JSON file
//  - *.yaml.bz2 => ("*", "yaml", "bzip2") // bzip2-compressed YAML file
//  - *.toml.sz => ("*", "toml", "snappy") // snappy-compressed TOML file
func SplitNameFormatCompression(p string) (string, string, string) {

	compression := ""

	ext := filepath.Ext(p)

	if len(ext) == 0 {
		return p, "", ""
	}

	if ext == ".gz" {
		compression = "gzip"
		p = p[:len(p)-3]
		ext = filepath.Ext(p)
	} else if ext == ".sz" {
		compression = "snappy"
		p = p[:len(p)-3]
		ext = filepath.Ext(p)
	} else if ext == ".bz2" {
		compression = "bzip2"
		p = p[:len(p)-4]
		ext = filepath.Ext(p)
	} else if ext == ".zip" {
		compression = "zip"
		p = p[:len(p)-4]
		ext = filepath.Ext(p)
	}

	if len(ext) == 0 {
		return p, "", compression
	}

	p = p[:len(p)-len(ext)]

	switch ext {
	case ".bson":
		return p, "bson", compression
	case ".json":
		return p, "json", compression
	case ".jsonl":
		return p, "jsonl", compression
	case ".properties", ".props", ".prop":
		return p, "properties", compression
	case ".toml":
		return p, "toml", compression
	case ".yaml", ".yml":
		return p, "yaml", compression
	}

	return p, "", compression
}
