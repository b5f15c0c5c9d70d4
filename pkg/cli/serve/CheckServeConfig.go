// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/cli/cors"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/http"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/logging"
)

// CheckServeConfig checks the serve configuration.
func CheckServeConfig(v *viper.Viper, args []string) error {
	err := http.CheckHttpConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with http configuration")
	}
	err = cors.CheckCorsConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with cors configuration")
	}
	err = logging.CheckLoggingConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with logging configuration")
	}
	return nil
}
