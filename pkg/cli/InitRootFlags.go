// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/cli/aws"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/logging"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/runtime"
)

// InitRootFlags initializes the root flags.
func InitRootFlags(flag *pflag.FlagSet) {
	aws.InitAwsFlags(flag)
	logging.InitLoggingFlags(flag)
	runtime.InitRuntimeFlags(flag)

	flag.StringSliceP("config-uri", "", []string{}, "the uri(s) to the config file")
}
