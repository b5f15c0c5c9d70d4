// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

import (
	"github.com/NYTimes/gziphandler"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/catalog"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/logging"
	"github.com/sopheayat/slms-geo-portal/pkg/cli/runtime"
	"github.com/sopheayat/slms-geo-portal/pkg/config"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

const (
	FlagCacheDefaultExpiration = "cache-default-expiration"
	FlagCacheCleanupInterval   = "cache-cleanup-interval"
	FlagCatalogUri             = "catalog-uri"
	FlagCatalogPretty          = "catalog-pretty"
	FlagLogRequests            = "log-requests"

	DefaultCacheDefaultExpiration = time.Minute * 5
	DefaultCacheCleanupInterval   = time.Minute * 10
)

func serveFunction(gitBranch string, gitCommit string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		//
		// Viper
		//

		v := viper.New()

		err := v.BindPFlags(cmd.Flags())
		if err != nil {
			return errors.Wrap(err, "error binding flags")
		}
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv() // set environment variables to overwrite config
		util.MergeConfigs(v, v.GetStringSlice("config-uri"))

		verbose := v.GetBool("verbose")

		if verbose {
			config.PrintViperSettings(v)
		}

		//
		// Check Configuration
		//

		err = CheckServeConfig(v, args)
		if err != nil {
			return errors.Wrap(err, "error with configuration")
		}

		//
		// Runtime
		//

		runtimeMaxProcs := v.GetInt(runtime.FlagRuntimeMaxProcs)

		if runtimeMaxProcs == 0 {
			// 0 indicates that the number of max procs should be set to the number of cpus.
			runtimeMaxProcs = runtime.NumCPU()
		}

		runtime.GOMAXPROCS(runtimeMaxProcs)

		//
		// HTTP
		//

		address := v.GetString("http-address")
		httpTimeoutIdle := v.GetDuration("http-timeout-idle")
		httpTimeoutRead := v.GetDuration("http-timeout-read")
		httpTimeoutWrite := v.GetDuration("http-timeout-write")

		//
		// AWS
		//

		awsDefaultRegion := v.GetString("aws-default-region")
		awsAccessKeyId := v.GetString("aws-access-key-id")
		awsSecretAccessKey := v.GetString("aws-secret-access-key")
		awsSessionToken := v.GetString("aws-session-token")

		catalogUri := v.GetString(FlagCatalogUri)

		var s3Client *s3.S3

		if strings.HasPrefix(catalogUri, "s3://") {
			awsSession, err := util.ConnectToAWS(awsAccessKeyId, awsSecretAccessKey, awsSessionToken, awsDefaultRegion)
			if err != nil {
				fmt.Println(errors.Wrap(err, "error connecting to AWS"))
				os.Exit(1)
			}
			s3Client = s3.New(awsSession)
		}

		logger := logging.NewLoggerFromViper(v)

		messages := make(chan interface{}, 10000)
		logger.ListenInfo(messages, nil)

		//
		// Catalog
		//

		portalCatalog := catalog.NewPortalCatalog()

		if len(catalogUri) > 0 {
			err := portalCatalog.LoadFromUri(&catalog.LoadFromUriInput{
				Uri:      catalogUri,
				Logger:   logger,
				S3Client: s3Client,
			})
			if err != nil {
				logger.Fatal(err)
			}
		}

		errorsChannel := make(chan interface{}, 10000)
		requests := make(chan request.Request, 10000)

		//
		// Router
		//

		portalRouter, err := NewRouter(&NewRouterInput{
			Viper:         v,
			Catalog:       portalCatalog,
			Logger:        logger,
			ErrorsChannel: errorsChannel,
			Requests:      requests,
			Messages:      messages,
			GitBranch:     gitBranch,
			GitCommit:     gitCommit,
			Verbose:       verbose,
		})
		if err != nil {
			logger.Fatal(errors.Wrap(err, "error creating new router"))
		}

		var handler http.Handler = portalRouter
		if v.GetBool("http-middleware-gzip") {
			handler = gziphandler.GzipHandler(handler)
		}

		gracefulShutdown := v.GetBool("http-graceful-shutdown")
		gracefulShutdownWait := v.GetDuration("http-graceful-shutdown-wait")

		logger.Info(map[string]interface{}{
			"msg":                  "configuring server",
			"address":              address,
			"httpTimeoutIdle":      httpTimeoutIdle,
			"httpTimeoutRead":      httpTimeoutRead,
			"httpTimeoutWrite":     httpTimeoutWrite,
			"gracefulShutdown":     gracefulShutdown,
			"gracefulShutdownWait": gracefulShutdownWait,
		})

		srv := &http.Server{
			Addr:         address,
			IdleTimeout:  httpTimeoutIdle,
			ReadTimeout:  httpTimeoutRead,
			WriteTimeout: httpTimeoutWrite,
			Handler:      handler,
		}

		logger.Flush()

		if gracefulShutdown {
			go func() {
				logger.Info("starting server with graceful shutdown")
				logger.InfoF("listening on %s", srv.Addr)
				logger.Flush()
				if err := srv.ListenAndServe(); err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
			}()

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
			<-c
			logger.Close()
			ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownWait)
			defer cancel()
			err := srv.Shutdown(ctx)
			logger.Info("received signal for graceful shutdown of server")
			logger.Flush()
			if err != nil {
				os.Exit(1)
			}
			os.Exit(0)
		}

		logger.Info("starting server without graceful shutdown")
		logger.InfoF("listening on %s", srv.Addr)
		logger.Flush()
		logger.Fatal(srv.ListenAndServe())

		return nil
	}
}
