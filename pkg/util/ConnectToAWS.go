// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// ConnectToAWS creates a new AWS session from the given credentials.  If
// the access key id is empty, falls back to the default credential chain.
func ConnectToAWS(awsAccessKeyId string, awsSecretAccessKey string, awsSessionToken string, awsRegion string) (*session.Session, error) {
	config := aws.Config{
		MaxRetries: aws.Int(3),
		Region:     aws.String(awsRegion),
	}
	if len(awsAccessKeyId) > 0 {
		config.Credentials = credentials.NewStaticCredentials(awsAccessKeyId, awsSecretAccessKey, awsSessionToken)
	}
	return session.NewSessionWithOptions(session.Options{Config: config})
}
