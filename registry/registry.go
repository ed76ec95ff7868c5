/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// Registry is the host-side asset registry collaborator. It tracks script
// and style handles, their sources and dependency lists, and arbitrary
// per-handle side data, and marks handles for output on the current page.
//
// Registration methods return whether the handle was accepted; a false
// return (for example, a duplicate handle registered with conflicting
// arguments) is recorded by the caller and never escalated.
type Registry interface {
	// RegisterScript declares a script handle. Deps are handles that must
	// load before it; ver is appended as a cache-busting parameter and may
	// be empty for content-hashed files; inFooter selects footer placement.
	RegisterScript(handle, src string, deps []string, ver string, inFooter bool) bool

	// RegisterStyle declares a style handle. An empty ver omits the
	// cache-busting parameter; media is the CSS media attribute.
	RegisterStyle(handle, src string, deps []string, ver, media string) bool

	// RegisterScriptModule declares an ES module entry. Chunk loading is
	// delegated to the runtime module graph.
	RegisterScriptModule(handle, src string, deps []string, ver string)

	// EnqueueScript marks a registered script handle for page output.
	EnqueueScript(handle string)

	// EnqueueStyle marks a registered style handle for page output.
	EnqueueStyle(handle string)

	// SetData attaches side data to a handle's registry entry under key.
	SetData(handle, key string, value any) bool

	// Data returns the side data stored for handle under key, or nil.
	Data(handle, key string) any
}
