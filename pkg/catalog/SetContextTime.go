// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

// SetContextTime overwrites the current time instant of the given
// context.
func (c *PortalCatalog) SetContextTime(id int, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.contextTimes[id] = value
}

// ContextTime returns the current time instant of the given context, if
// one is set.
func (c *PortalCatalog) ContextTime(id int) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	value, ok := c.contextTimes[id]
	return value, ok
}

// ContextTimes returns the mapping of context id to current time instant.
func (c *PortalCatalog) ContextTimes() map[int]string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	times := make(map[int]string, len(c.contextTimes))
	for id, value := range c.contextTimes {
		times[id] = value
	}
	return times
}
