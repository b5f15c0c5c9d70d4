// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// CheckLoggingConfig checks the logging configuration.
func CheckLoggingConfig(v *viper.Viper) error {
	if len(v.GetString(FlagInfoDestination)) == 0 {
		return errors.New("info destination cannot be blank")
	}
	if len(v.GetString(FlagErrorDestination)) == 0 {
		return errors.New("error destination cannot be blank")
	}
	return nil
}
