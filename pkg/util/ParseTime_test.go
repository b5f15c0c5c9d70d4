// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeDate(t *testing.T) {
	out, err := ParseTime("2020-01-02")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), out)
}

func TestParseTimeMinutes(t *testing.T) {
	out, err := ParseTime("2020-01-02T03:04")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 0, 0, time.UTC), out)
}

func TestParseTimeSeconds(t *testing.T) {
	out, err := ParseTime("2020-01-02T03:04:05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), out)
}

func TestParseTimeOffset(t *testing.T) {
	out, err := ParseTime("2020-01-02T03:04:05+01:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 2, 2, 4, 5, 0, time.UTC).Unix(), out.Unix())
}

func TestParseTimeFractional(t *testing.T) {
	out, err := ParseTime("2020-01-02T03:04:05.5")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 500000000, time.UTC), out)
}

func TestParseTimeOrdering(t *testing.T) {
	a, err := ParseTime("2020-01-02")
	assert.NoError(t, err)
	b, err := ParseTime("2020-01-02T00:00:01")
	assert.NoError(t, err)
	assert.True(t, a.Before(b))
}

func TestParseTimeInvalid(t *testing.T) {
	_, err := ParseTime("not-a-time")
	assert.Error(t, err)
}
