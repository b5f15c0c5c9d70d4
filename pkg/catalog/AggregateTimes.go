// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"sort"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

// AggregateTimes recomputes, for every context, the sorted de-duplicated
// union of the time instants exposed by its wms member layers, and resets
// the context's current time to the latest instant.  The recompute is
// always over the whole tree, never incremental.
func (c *PortalCatalog) AggregateTimes() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.aggregateTimes()
}

// aggregateTimes is the recompute under an already-held mutex, called by
// every operation that can change context layer membership or the layer
// catalog.
func (c *PortalCatalog) aggregateTimes() {
	for _, context := range c.contexts {
		times := make([]string, 0)
		seen := map[string]struct{}{}
		for _, layer := range context.Layers {
			wms, ok := layer.(*core.WMSLayer)
			if !ok || len(wms.Times) == 0 {
				continue
			}
			for _, value := range wms.Times {
				if _, duplicate := seen[value]; duplicate {
					continue
				}
				seen[value] = struct{}{}
				times = append(times, value)
			}
		}
		sort.SliceStable(times, func(i int, j int) bool {
			ti, erri := util.ParseTime(times[i])
			tj, errj := util.ParseTime(times[j])
			if erri != nil || errj != nil {
				return times[i] < times[j]
			}
			return ti.Before(tj)
		})
		context.Times = times
		if len(times) > 0 {
			c.contextTimes[context.Id] = times[len(times)-1]
		} else {
			delete(c.contextTimes, context.Id)
		}
	}
}
