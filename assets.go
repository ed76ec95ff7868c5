/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"log/slog"
	"sync"

	"github.com/suparena/assetstore/i18n"
	"github.com/suparena/assetstore/manifest"
	"github.com/suparena/assetstore/registry"
)

// Side-data keys written to the asset registry.
const (
	// DataKeyChunks stores a handle's dynamic chunk list for the
	// translation assembler.
	DataKeyChunks = "chunks"
	// DataKeyAfter stores inline script output emitted after a handle.
	DataKeyAfter = "after"
	// DataKeyRTL marks a style handle for in-place RTL file substitution.
	DataKeyRTL = "rtl"
	// DataKeyPath stores a style handle's resolved filesystem path.
	DataKeyPath = "path"
	// DataKeyTextDomain stores the text domain wired to a script handle.
	DataKeyTextDomain = "textdomain"
)

// defaultMedia is the CSS media attribute used by the asset-level style
// registrar.
const defaultMedia = "all"

// Assets is the coordinating service for asset registration. It owns the
// two registration tables (one for scripts, one for styles) and talks to
// the manifest resolver, the asset registry, and the optional translation
// and locale collaborators. Construct one per request or process and
// discard it with the execution context.
type Assets struct {
	res    *manifest.Resolver
	reg    registry.Registry
	loader i18n.Loader
	domain string
	rtl    func() bool
	log    *slog.Logger

	mu      sync.Mutex
	scripts map[string]bool
	styles  map[string]bool
}

// Option configures an Assets service.
type Option func(*Assets)

// WithTranslations wires a translation loader and the text domain used
// for every translation lookup. Without it, translation flags are no-ops
// and Translations returns nothing.
func WithTranslations(loader i18n.Loader, domain string) Option {
	return func(a *Assets) {
		a.loader = loader
		a.domain = domain
	}
}

// WithRTL sets the locale collaborator answering whether the current
// locale is right-to-left. Default: never.
func WithRTL(fn func() bool) Option {
	return func(a *Assets) {
		if fn != nil {
			a.rtl = fn
		}
	}
}

// WithLogger sets the logger for registration bookkeeping.
func WithLogger(log *slog.Logger) Option {
	return func(a *Assets) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an Assets service backed by the given resolver and registry.
func New(res *manifest.Resolver, reg registry.Registry, opts ...Option) *Assets {
	a := &Assets{
		res:     res,
		reg:     reg,
		rtl:     func() bool { return false },
		log:     slog.Default(),
		scripts: make(map[string]bool),
		styles:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterScript registers a script with the asset registry exactly once.
// The first call per handle performs the registration and records the
// registry's answer; every later call returns the recorded answer without
// touching the registry, regardless of differing arguments. When
// withTranslations is set and the registration succeeded, the configured
// text domain is wired to the handle.
func (a *Assets) RegisterScript(handle, src string, deps []string, ver string, inFooter, withTranslations bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ok, seen := a.scripts[handle]; seen {
		return ok
	}

	ok := a.reg.RegisterScript(handle, src, deps, ver, inFooter)
	a.scripts[handle] = ok
	if !ok {
		a.log.Debug("script registration rejected", "handle", handle)
	}
	if ok && src != "" && withTranslations && a.loader != nil {
		a.reg.SetData(handle, DataKeyTextDomain, a.domain)
	}
	return ok
}

// RegisterStyle registers a style with the asset registry exactly once,
// with the same table semantics as RegisterScript. An empty ver registers
// the style without a cache-busting version.
func (a *Assets) RegisterStyle(handle, src string, deps []string, ver, media string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ok, seen := a.styles[handle]; seen {
		return ok
	}

	ok := a.reg.RegisterStyle(handle, src, deps, ver, media)
	a.styles[handle] = ok
	if !ok {
		a.log.Debug("style registration rejected", "handle", handle)
	}
	return ok
}

// EnqueueScript registers a script if needed, then marks it for page
// output. The enqueue itself is deliberately not guarded: the registry is
// responsible for emitting each tag once.
func (a *Assets) EnqueueScript(handle, src string, deps []string, ver string, inFooter, withTranslations bool) {
	a.RegisterScript(handle, src, deps, ver, inFooter, withTranslations)
	a.reg.EnqueueScript(handle)
}

// EnqueueStyle registers a style if needed, then marks it for page output.
func (a *Assets) EnqueueStyle(handle, src string, deps []string, ver, media string) {
	a.RegisterStyle(handle, src, deps, ver, media)
	a.reg.EnqueueStyle(handle)
}

// scriptRegistered reports whether a script handle is already in the
// registration table, successful or not.
func (a *Assets) scriptRegistered(handle string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, seen := a.scripts[handle]
	return seen
}

// styleRegistered reports whether a style handle is already in the
// registration table.
func (a *Assets) styleRegistered(handle string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, seen := a.styles[handle]
	return seen
}
