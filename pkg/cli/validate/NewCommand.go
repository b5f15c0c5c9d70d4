// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the validate command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate uri",
		Short: "validate a configuration document",
		Long:  "validate a configuration document against the portal schema and print the violations",
		Args:  cobra.ExactArgs(1),
		RunE:  validateFunction,
	}
	InitValidateFlags(cmd.Flags())
	return cmd
}
