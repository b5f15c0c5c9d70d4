// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package runtime

import (
	"runtime"
)

const (
	FlagRuntimeMaxProcs = "runtime-max-procs"
)

// NumCPU returns the number of logical CPUs usable by the current process.
func NumCPU() int {
	return runtime.NumCPU()
}

// GOMAXPROCS sets the maximum number of CPUs that can be executing simultaneously.
func GOMAXPROCS(n int) int {
	return runtime.GOMAXPROCS(n)
}
