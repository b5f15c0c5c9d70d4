// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"os"
	"strings"
)

import (
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/cli/serve"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/validate"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/version"
)

// Execute handles command line calls to geoportal.
func Execute(gitBranch string, gitCommit string) error {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:   "geoportal",
		Short: "a server for hierarchical map portal configurations",
		Long: `Geoportal serves and edits hierarchical map portal configurations.
Through go-reader-writer, supports the follow compression algorithms: ` + strings.Join(grw.Algorithms, ", ") + `
Through go-simple-serializer, supports the follow file formats: ` + strings.Join(gss.Formats, ", "),
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\ngeoportal completion > /etc/bash_completion.d/geoportal"
	} else {
		if _, err := os.Stat("/usr/local/etc/bash_completion.d/"); !os.IsNotExist(err) {
			completionCommandLong = "To install completion scripts run:\ngeoportal completion > /usr/local/etc/bash_completion.d/geoportal"
		} else {
			completionCommandLong = "To install completion scripts run:\ngeoportal completion > .../bash_completion.d/geoportal"
		}
	}

	rootCmd.AddCommand(func() *cobra.Command {
		return &cobra.Command{
			Use:   "completion",
			Short: "Generates bash completion scripts",
			Long:  completionCommandLong,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rootCmd.GenBashCompletion(os.Stdout)
			},
		}
	}())

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	rootCmd.AddCommand(validate.NewCommand())

	rootCmd.AddCommand(serve.NewCommand(&serve.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	return rootCmd.Execute()
}
