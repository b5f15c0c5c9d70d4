// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"github.com/spf13/pflag"
)

const (
	FlagFormat = "format"
)

// InitValidateFlags initializes the validate flags.
func InitValidateFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagFormat, "f", "", "the format of the configuration document, inferred from the uri when blank")
}
