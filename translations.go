/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"github.com/suparena/assetstore/i18n"
)

// Translations assembles the decoded translation payloads for a script
// handle and every dynamic chunk recorded for it by RegisterScriptAsset.
// The handle's own payload comes first, then each chunk's in recorded
// order. Absent and malformed payloads are dropped; the relative order of
// the rest is preserved. When no chunk list was ever attached to the
// handle, the result is empty.
func (a *Assets) Translations(handle string) []i18n.TranslationSet {
	chunks, ok := a.reg.Data(handle, DataKeyChunks).([]string)
	if !ok {
		return []i18n.TranslationSet{}
	}

	sets := make([]i18n.TranslationSet, 0, len(chunks)+1)
	if a.loader == nil {
		return sets
	}

	for _, h := range append([]string{handle}, chunks...) {
		raw := a.loader.LoadTranslations(h, a.domain)
		if raw == "" {
			continue
		}
		set, ok := i18n.Decode(raw)
		if !ok {
			continue
		}
		sets = append(sets, set)
	}
	return sets
}
