/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Loader retrieves the raw translation payload for a handle within a text
// domain. An empty string means no translations exist for the handle;
// loaders never fail.
type Loader interface {
	LoadTranslations(handle, domain string) string
}

// TranslationSet is a decoded translation payload in the Jed wire format
// emitted by build tooling.
type TranslationSet struct {
	TranslationRevisionDate string                    `json:"translation-revision-date,omitempty"`
	Generator               string                    `json:"generator,omitempty"`
	Domain                  string                    `json:"domain,omitempty"`
	LocaleData              map[string]map[string]any `json:"locale_data,omitempty"`
}

// Decode parses a raw translation payload. Empty or malformed payloads
// report ok=false and are treated the same as absent ones.
func Decode(raw string) (TranslationSet, bool) {
	var set TranslationSet
	if raw == "" {
		return set, false
	}
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return TranslationSet{}, false
	}
	return set, true
}

// DirLoader is a Loader backed by a directory of per-handle translation
// files named <domain>-<handle>.json, as laid out by build tooling.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a DirLoader reading from dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{dir: dir}
}

// LoadTranslations returns the raw payload for handle, or "" when the
// translation file does not exist or cannot be read.
func (l *DirLoader) LoadTranslations(handle, domain string) string {
	data, err := os.ReadFile(filepath.Join(l.dir, domain+"-"+handle+".json"))
	if err != nil {
		return ""
	}
	return string(data)
}
