/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

// RegisterStyleAsset registers a style handle together with its preloaded
// chunks. Chunks are registered with an empty version: their filenames
// embed a content hash, and a cache-busting parameter would bypass CDN
// caching keyed on the hashed name. The final dependency list is caller
// dependencies followed by chunk dependencies. When the current locale is
// right-to-left the RTL file variant is resolved in place of the default;
// the handle name is unaffected. Styles have no dynamic chunk list.
//
// The call is idempotent per handle and never fails.
func (a *Assets) RegisterStyleAsset(handle string, deps []string) {
	if a.styleRegistered(handle) {
		return
	}

	rtl := a.rtl()
	meta := a.res.Metadata(handle)

	for _, chunk := range meta.CSS {
		a.RegisterStyle(chunk, a.res.StyleURL(chunk, rtl), nil, "", defaultMedia)
	}

	all := make([]string, 0, len(deps)+len(meta.CSS))
	all = append(all, deps...)
	all = append(all, meta.CSS...)

	a.RegisterStyle(handle, a.res.StyleURL(handle, rtl), all, meta.Version, defaultMedia)
	a.reg.SetData(handle, DataKeyRTL, "replace")
	a.reg.SetData(handle, DataKeyPath, a.res.StylePath(handle, rtl))
}

// EnqueueStyleAsset registers a style asset if needed and marks the
// handle for page output.
func (a *Assets) EnqueueStyleAsset(handle string, deps []string) {
	a.RegisterStyleAsset(handle, deps)
	a.reg.EnqueueStyle(handle)
}
