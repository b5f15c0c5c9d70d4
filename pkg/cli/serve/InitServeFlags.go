// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/cli/cors"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/http"
)

// InitServeFlags initializes the serve flags.
func InitServeFlags(flag *pflag.FlagSet) {

	http.InitHttpFlags(flag)

	// Cache Flags
	flag.DurationP(FlagCacheDefaultExpiration, "", DefaultCacheDefaultExpiration, "the default expiration for items in the cache")
	flag.DurationP(FlagCacheCleanupInterval, "", DefaultCacheCleanupInterval, "the cleanup interval for the cache")

	// Logging Flags
	flag.BoolP(FlagLogRequests, "", false, "log http requests")

	// CORS Flags
	cors.InitCorsFlags(flag)

	// Catalog Flags
	flag.String(FlagCatalogUri, "", "uri of the catalog backend")
	flag.Bool(FlagCatalogPretty, false, "pretty-print the catalog when saving")
}
