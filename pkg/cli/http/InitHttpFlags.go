// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"github.com/spf13/pflag"
)

// InitHttpFlags initializes the http flags for the portal server.
func InitHttpFlags(flag *pflag.FlagSet) {
	flag.StringSlice(FlagHttpSchemes, DefaultHttpSchemes, "the \"public\" schemes of the portal server")
	flag.StringP(FlagHttpLocation, "", DefaultHttpLocation, "the \"public\" location of the portal server")
	flag.StringP(FlagHttpAddress, "a", DefaultHttpAddress, "bind address for the portal server")
	flag.DurationP(FlagHttpTimeoutIdle, "", DefaultHttpTimeoutIdle, "the idle timeout for the portal server")
	flag.DurationP(FlagHttpTimeoutRead, "", DefaultHttpTimeoutRead, "the read timeout for the portal server")
	flag.DurationP(FlagHttpTimeoutWrite, "", DefaultHttpTimeoutWrite, "the write timeout for the portal server")
	flag.Bool(FlagHttpMiddlewareDebug, false, "enable debug middleware")
	flag.Bool(FlagHttpMiddlewareRecover, false, "enable recovery middleware")
	flag.Bool(FlagHttpMiddlewareGzip, false, "gzip portal responses")
	flag.Bool(FlagHttpMiddlewareCors, false, "enable CORS middleware for the portal API")
	flag.Bool(FlagHttpGracefulShutdown, false, "enable graceful shutdown of the portal server")
	flag.Duration(FlagHttpGracefulShutdownWait, DefaultGracefulShutdownWait, "the duration to wait for graceful shutdown")
}
