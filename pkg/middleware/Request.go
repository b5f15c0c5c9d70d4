// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"time"
)

// Request carries per-request metadata through the handler chain for the
// log middleware.
type Request struct {
	Client  string
	Host    string
	Url     string
	Method  string
	Start   *time.Time
	End     *time.Time
	Handler string
	Error   error
}

func (r Request) Map() map[string]interface{} {
	m := map[string]interface{}{
		"client": r.Client,
		"host":   r.Host,
		"url":    r.Url,
		"method": r.Method,
	}
	if r.Start != nil {
		m["start"] = r.Start.Format(time.RFC3339)
		if r.End != nil {
			m["duration"] = r.End.Sub(*r.Start).String()
		}
	}
	if len(r.Handler) > 0 {
		m["handler"] = r.Handler
	}
	if r.Error != nil {
		m["error"] = r.Error.Error()
	}
	return m
}
