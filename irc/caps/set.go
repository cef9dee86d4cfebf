// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package caps

import (
	"sort"
	"strings"
	"sync"
)

// Set tracks the capabilities that have been acknowledged for a connection.
type Set struct {
	sync.RWMutex
	// capabilities holds the capabilities this set has.
	capabilities map[Capability]bool
}

// NewSet returns a new Set, with the given capabilities enabled.
func NewSet(capabs ...Capability) *Set {
	newSet := Set{
		capabilities: make(map[Capability]bool),
	}
	newSet.Enable(capabs...)

	return &newSet
}

// Enable enables the given capabilities.
func (s *Set) Enable(capabs ...Capability) {
	s.Lock()
	defer s.Unlock()

	for _, capab := range capabs {
		s.capabilities[capab] = true
	}
}

// Disable disables the given capabilities.
func (s *Set) Disable(capabs ...Capability) {
	s.Lock()
	defer s.Unlock()

	for _, capab := range capabs {
		delete(s.capabilities, capab)
	}
}

// Has returns true if this set has the given capabilities.
func (s *Set) Has(caps ...Capability) bool {
	s.RLock()
	defer s.RUnlock()

	for _, cap := range caps {
		if !s.capabilities[cap] {
			return false
		}
	}
	return true
}

// List returns all enabled caps.
func (s *Set) List() []Capability {
	s.RLock()
	defer s.RUnlock()

	var result []Capability
	for capab := range s.capabilities {
		result = append(result, capab)
	}
	return result
}

// Count returns how many enabled caps this set has.
func (s *Set) Count() int {
	s.RLock()
	defer s.RUnlock()

	return len(s.capabilities)
}

// String returns all of our enabled caps as a space-separated string,
// in a stable order.
func (s *Set) String() string {
	s.RLock()
	defer s.RUnlock()

	var names []string
	for capab := range s.capabilities {
		names = append(names, capab.Name())
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
