// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrMissingRequiredParameter struct {
	Name string
}

func (e *ErrMissingRequiredParameter) Error() string {
	return "missing required parameter " + e.Name
}
