// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"strconv"
)

type ErrMissingObject struct {
	Type string
	Id   int
}

func (e *ErrMissingObject) Error() string {
	return e.Type + " with id " + strconv.Itoa(e.Id) + " does not exist or otherwise missing"
}
