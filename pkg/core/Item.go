// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package core

type ItemKind string

const (
	ItemKindGroup   = ItemKind("group")
	ItemKindContext = ItemKind("context")
)

// Item is an ordered entry in a Group, referencing a child Group or Context
// by id.  Order is meaningful and defines display order.
type Item struct {
	Kind ItemKind
	Id   int
}
