// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package core

import (
	"context"
)

// Node is a node in the configuration tree, either a *Group or a *Context.
// Groups and Contexts share a single identity space, so an id resolves to
// at most one Node regardless of kind.
type Node interface {
	GetID() int
	GetKind() ItemKind
	Map(ctx context.Context) map[string]interface{}
}
