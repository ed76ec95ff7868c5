/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sync"
)

// Script is a recorded script registration.
type Script struct {
	Handle   string
	Src      string
	Deps     []string
	Ver      string
	InFooter bool
	Module   bool
}

// Style is a recorded style registration.
type Style struct {
	Handle string
	Src    string
	Deps   []string
	Ver    string
	Media  string
}

// InMemory is a thread-safe in-memory Registry implementation. It records
// registrations, enqueues, and side data verbatim, and exposes them for
// inspection. Registering a handle that already exists is rejected and
// returns false; the original entry is kept.
type InMemory struct {
	mu              sync.RWMutex
	scripts         map[string]Script
	styles          map[string]Style
	data            map[string]map[string]any
	enqueuedScripts []string
	enqueuedStyles  []string
	failScripts     map[string]bool
	failStyles      map[string]bool
}

// NewInMemory creates an empty in-memory registry.
func NewInMemory() *InMemory {
	return &InMemory{
		scripts:     make(map[string]Script),
		styles:      make(map[string]Style),
		data:        make(map[string]map[string]any),
		failScripts: make(map[string]bool),
		failStyles:  make(map[string]bool),
	}
}

// WithScriptFailure makes RegisterScript reject the given handle, for
// exercising the caller's false-result bookkeeping in tests.
func (m *InMemory) WithScriptFailure(handle string) *InMemory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failScripts[handle] = true
	return m
}

// WithStyleFailure makes RegisterStyle reject the given handle.
func (m *InMemory) WithStyleFailure(handle string) *InMemory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failStyles[handle] = true
	return m
}

// RegisterScript records a script registration.
func (m *InMemory) RegisterScript(handle, src string, deps []string, ver string, inFooter bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failScripts[handle] {
		return false
	}
	if _, exists := m.scripts[handle]; exists {
		return false
	}
	m.scripts[handle] = Script{
		Handle:   handle,
		Src:      src,
		Deps:     append([]string(nil), deps...),
		Ver:      ver,
		InFooter: inFooter,
	}
	return true
}

// RegisterStyle records a style registration.
func (m *InMemory) RegisterStyle(handle, src string, deps []string, ver, media string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failStyles[handle] {
		return false
	}
	if _, exists := m.styles[handle]; exists {
		return false
	}
	m.styles[handle] = Style{
		Handle: handle,
		Src:    src,
		Deps:   append([]string(nil), deps...),
		Ver:    ver,
		Media:  media,
	}
	return true
}

// RegisterScriptModule records an ES module registration. An existing
// entry for the handle is left untouched.
func (m *InMemory) RegisterScriptModule(handle, src string, deps []string, ver string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.scripts[handle]; exists {
		return
	}
	m.scripts[handle] = Script{
		Handle: handle,
		Src:    src,
		Deps:   append([]string(nil), deps...),
		Ver:    ver,
		Module: true,
	}
}

// EnqueueScript marks a script handle for output. Duplicate enqueues are
// collapsed, matching host registries that emit each tag once.
func (m *InMemory) EnqueueScript(handle string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.enqueuedScripts {
		if h == handle {
			return
		}
	}
	m.enqueuedScripts = append(m.enqueuedScripts, handle)
}

// EnqueueStyle marks a style handle for output.
func (m *InMemory) EnqueueStyle(handle string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.enqueuedStyles {
		if h == handle {
			return
		}
	}
	m.enqueuedStyles = append(m.enqueuedStyles, handle)
}

// SetData attaches side data to a handle.
func (m *InMemory) SetData(handle, key string, value any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[handle]
	if !ok {
		entry = make(map[string]any)
		m.data[handle] = entry
	}
	entry[key] = value
	return true
}

// Data returns side data for a handle, or nil when none was set.
func (m *InMemory) Data(handle, key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.data[handle]
	if !ok {
		return nil
	}
	return entry[key]
}

// Script returns the recorded registration for a script handle.
func (m *InMemory) Script(handle string) (Script, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scripts[handle]
	return s, ok
}

// Style returns the recorded registration for a style handle.
func (m *InMemory) Style(handle string) (Style, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.styles[handle]
	return s, ok
}

// EnqueuedScripts returns script handles marked for output, in order.
func (m *InMemory) EnqueuedScripts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.enqueuedScripts...)
}

// EnqueuedStyles returns style handles marked for output, in order.
func (m *InMemory) EnqueuedStyles() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.enqueuedStyles...)
}
