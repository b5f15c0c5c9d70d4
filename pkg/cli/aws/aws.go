// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package aws

// Flags for the AWS credentials used when the catalog is persisted to an
// s3:// uri.
const (
	FlagAwsProfile                         = "aws-profile"
	FlagAwsDefaultRegion                   = "aws-default-region"
	FlagAwsRegion                          = "aws-region"
	FlagAwsAccessKeyId                     = "aws-access-key-id"
	FlagAwsSecretAccessKey                 = "aws-secret-access-key"
	FlagAwsSessionToken                    = "aws-session-token"
	FlagAwsSecurityToken                   = "aws-security-token"
	FlagAwsContainerCredentialsRelativeUri = "aws-container-credentials-relative-uri"
)
