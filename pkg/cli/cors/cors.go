// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cors

const (
	FlagCorsOrigin      = "cors-origin"
	FlagCorsCredentials = "cors-credentials"

	CorsOriginWildcard = "*"
)
