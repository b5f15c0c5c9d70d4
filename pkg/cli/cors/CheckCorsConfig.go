// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cors

import (
	"github.com/spf13/viper"
)

// CheckCorsConfig checks the CORS configuration.
func CheckCorsConfig(v *viper.Viper) error {
	return nil
}
