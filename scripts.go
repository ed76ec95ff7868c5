/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"fmt"

	"github.com/suparena/assetstore/manifest"
)

// inlineTranslationsTemplate installs a dynamic chunk's translations when
// the entry script loads, since the chunk's own tag is never emitted by
// this layer.
const inlineTranslationsTemplate = `( function( domain, translations ) {
	var data = translations.locale_data[ domain ] || translations.locale_data.messages;
	data[ "" ].domain = domain;
	self.i18n && self.i18n.setLocaleData( data, domain );
} )( %q, %s );`

// RegisterScriptAsset registers a script handle together with its
// build-generated chunk graph:
//
//  1. Preloaded chunks from the manifest are registered as their own
//     handles with the entry's version and become load-time dependencies.
//  2. The handle is registered with declared dependencies first, caller
//     dependencies second, and chunk dependencies last; the order drives
//     load sequencing in the host registry.
//  3. The dynamic chunk list is attached as side data for the translation
//     assembler.
//  4. Dynamic chunks are registered as inert handles so the runtime can
//     import them on demand; they are never load-time dependencies. When
//     translations are requested, each dynamic chunk's payload is emitted
//     inline after the entry handle.
//
// The call is idempotent per handle and never fails: missing manifests
// resolve to defaults.
func (a *Assets) RegisterScriptAsset(handle string, deps []string, withTranslations bool) {
	if a.scriptRegistered(handle) {
		return
	}

	meta := a.res.Metadata(handle)

	for _, chunk := range meta.JS {
		a.RegisterScript(chunk, a.res.ScriptURL(chunk), nil, meta.Version, true, withTranslations)
	}

	all := make([]string, 0, len(meta.Dependencies)+len(deps)+len(meta.JS))
	all = append(all, meta.Dependencies...)
	all = append(all, deps...)
	all = append(all, meta.JS...)

	a.RegisterScript(handle, a.res.ScriptURL(handle), all, meta.Version, true, withTranslations)
	a.reg.SetData(handle, DataKeyChunks, meta.Chunks)

	for _, chunk := range meta.Chunks {
		a.RegisterScript(chunk, a.res.ScriptURL(chunk), nil, manifest.FallbackVersion, false, withTranslations)
		if withTranslations {
			a.appendInlineTranslations(handle, chunk)
		}
	}
}

// EnqueueScriptAsset registers a script asset if needed and marks the
// handle for page output.
func (a *Assets) EnqueueScriptAsset(handle string, deps []string, withTranslations bool) {
	a.RegisterScriptAsset(handle, deps, withTranslations)
	a.reg.EnqueueScript(handle)
}

// RegisterScriptModule registers a handle as an ES module entry using the
// manifest's declared dependencies and version directly. Chunk expansion
// is skipped: module graphs resolve their own imports at runtime.
func (a *Assets) RegisterScriptModule(handle, src string) {
	meta := a.res.Metadata(handle)
	a.reg.RegisterScriptModule(handle, src, meta.Dependencies, meta.Version)
}

// appendInlineTranslations emits chunk's translation payload as inline
// output after the outer handle. Absent payloads are skipped.
func (a *Assets) appendInlineTranslations(outer, chunk string) {
	if a.loader == nil {
		return
	}
	raw := a.loader.LoadTranslations(chunk, a.domain)
	if raw == "" {
		return
	}
	after, _ := a.reg.Data(outer, DataKeyAfter).([]string)
	after = append(after, fmt.Sprintf(inlineTranslationsTemplate, a.domain, raw))
	a.reg.SetData(outer, DataKeyAfter, after)
}
