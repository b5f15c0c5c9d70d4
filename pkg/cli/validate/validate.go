// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"fmt"
	"os"
	"strings"
)

import (
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/schema"
	"github.com/sopheayat/slms-geo-portal/pkg/serializer"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

func validateFunction(cmd *cobra.Command, args []string) error {

	v := viper.New()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	uri := args[0]

	format := v.GetString(FlagFormat)
	compression := ""
	if len(format) == 0 {
		_, format, compression = util.SplitNameFormatCompression(uri)
	}

	doc, err := serializer.New(format, compression, grw.NoDict).Deserialize(uri)
	if err != nil {
		return errors.Wrapf(err, "error reading configuration from uri %q", uri)
	}
	if doc == nil {
		return errors.Errorf("configuration at uri %q is empty", uri)
	}

	violations := schema.Validate(doc)
	if len(violations) == 0 {
		fmt.Println("valid")
		return nil
	}

	for _, violation := range violations {
		fmt.Println(fmt.Sprintf("%s: %s", violation.Path, violation.Reason))
	}
	os.Exit(1)
	return nil
}
