// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package schema

import (
	"strconv"
	"strings"
)

// Violation is a single schema violation at a path within a candidate
// configuration document.
type Violation struct {
	Path   string
	Reason string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Reason
}

func (v Violation) Map() map[string]interface{} {
	return map[string]interface{}{
		"path":   v.Path,
		"reason": v.Reason,
	}
}

// Violations is the full list of schema violations for a document.  A
// non-empty list is usable as an error so that load paths can abort with
// the structured rejection intact.
type Violations []Violation

func (v Violations) Error() string {
	reasons := make([]string, 0, len(v))
	for _, violation := range v {
		reasons = append(reasons, violation.String())
	}
	return "configuration document has " + strconv.Itoa(len(v)) + " schema violations: " + strings.Join(reasons, "; ")
}

func (v Violations) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, 0, len(v))
	for _, violation := range v {
		maps = append(maps, violation.Map())
	}
	return maps
}
