// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

// ToggleContext flips membership of the given context id in the active
// set: added if absent, removed if present.  Returns false without side
// effects when the id is not in the flat context list.
func (c *PortalCatalog) ToggleContext(id int) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.contextsById[id]; !ok {
		return false
	}
	if _, active := c.active[id]; active {
		delete(c.active, id)
	} else {
		c.active[id] = struct{}{}
	}
	return true
}

// IsActive reports whether the given context id is currently in the
// active set.
func (c *PortalCatalog) IsActive(id int) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	_, active := c.active[id]
	return active
}

// ActiveContextIds returns the ids of the active contexts in context-list
// order.
func (c *PortalCatalog) ActiveContextIds() []int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	ids := make([]int, 0, len(c.active))
	for _, context := range c.contexts {
		if _, active := c.active[context.Id]; active {
			ids = append(ids, context.Id)
		}
	}
	return ids
}
