// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
	"github.com/spf13/viper"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/catalog"
	"github.com/sopheayat/slms-geo-portal/pkg/request"
	"github.com/sopheayat/slms-geo-portal/pkg/router"
)

type NewRouterInput struct {
	Viper         *viper.Viper
	Catalog       *catalog.PortalCatalog
	Logger        *gsl.Logger
	ErrorsChannel chan interface{}
	Requests      chan request.Request
	Messages      chan interface{}
	GitBranch     string
	GitCommit     string
	Verbose       bool
}

func NewRouter(input *NewRouterInput) (*router.PortalRouter, error) {

	go func(requests chan request.Request, logRequests bool) {
		for r := range requests {
			if logRequests {
				input.Messages <- r
			}
		}
	}(input.Requests, input.Viper.GetBool(FlagLogRequests))

	errorDestination := input.Viper.GetString("error-destination")
	infoDestination := input.Viper.GetString("info-destination")

	if errorDestination == infoDestination {
		go func(errorsChannel chan interface{}) {
			for err := range errorsChannel {
				input.Messages <- err
			}
		}(input.ErrorsChannel)
	} else {
		input.Logger.ListenError(input.ErrorsChannel, nil)
	}

	awsSessionCache := gocache.New(
		input.Viper.GetDuration(FlagCacheDefaultExpiration),
		input.Viper.GetDuration(FlagCacheCleanupInterval))

	r := router.NewPortalRouter(&router.NewPortalRouterInput{
		Viper:           input.Viper,
		Catalog:         input.Catalog,
		Requests:        input.Requests,
		Messages:        input.Messages,
		ErrorsChannel:   input.ErrorsChannel,
		AwsSessionCache: awsSessionCache,
		GitBranch:       input.GitBranch,
		GitCommit:       input.GitCommit,
		Logger:          input.Logger,
	})

	return r, nil
}
