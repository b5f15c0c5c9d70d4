// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package main

import (
	"fmt"
	"os"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/cli"
)

var gitBranch string
var gitCommit string

func main() {
	err := cli.Execute(gitBranch, gitCommit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
