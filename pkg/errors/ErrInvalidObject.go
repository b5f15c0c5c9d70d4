// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

type ErrInvalidObject struct {
	Value interface{}
}

func (e *ErrInvalidObject) Error() string {
	return fmt.Sprintf("invalid object %v", e.Value)
}
