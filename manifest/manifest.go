/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	aserrors "github.com/suparena/assetstore/errors"
)

// FallbackVersion is the process-wide version string used whenever a
// manifest omits the asset version.
const FallbackVersion = "0.0.0"

// Default manifest file suffixes. Each handle has a pair of manifests next
// to its script file: one with the version and declared dependencies, one
// with the precomputed chunk index.
const (
	DefaultAssetSuffix = ".asset.json"
	DefaultChunkSuffix = ".chunks.json"
)

const defaultCacheSize = 256

// Asset is the resolved build metadata for one handle. It is fully
// populated after resolution: slices are never nil and Version is never
// empty. Instances are immutable once returned.
type Asset struct {
	// Version is the cache-busting version string.
	Version string `json:"version"`
	// Dependencies are the declared module dependencies.
	Dependencies []string `json:"dependencies"`
	// JS lists preloaded script chunk handles.
	JS []string `json:"js"`
	// CSS lists preloaded style chunk handles.
	CSS []string `json:"css"`
	// Chunks lists dynamically-imported chunk handles. These are loaded on
	// demand by the runtime and are never load-time dependencies.
	Chunks []string `json:"chunks"`
}

// assetManifest is the on-disk shape of <handle>.asset.json.
type assetManifest struct {
	Version      string   `json:"version"`
	Dependencies []string `json:"dependencies"`
}

// chunkManifest is the on-disk shape of <handle>.chunks.json.
type chunkManifest struct {
	JS     []string `json:"js"`
	CSS    []string `json:"css"`
	Chunks []string `json:"chunks"`
}

// Resolver loads and normalizes per-handle build metadata from a build
// output directory. Resolution is total: missing or unreadable manifests
// degrade to default values. Resolved metadata is cached, so each handle
// is read from disk at most once per cache lifetime.
type Resolver struct {
	baseDir     string
	baseURL     string
	assetSuffix string
	chunkSuffix string
	log         *slog.Logger
	cache       *lru.Cache[string, *Asset]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for degraded manifest reads.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithCacheSize sets the resolved-metadata cache capacity.
func WithCacheSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.cache, _ = lru.New[string, *Asset](n)
		}
	}
}

// WithSuffixes overrides the manifest file suffixes.
func WithSuffixes(asset, chunk string) Option {
	return func(r *Resolver) {
		if asset != "" {
			r.assetSuffix = asset
		}
		if chunk != "" {
			r.chunkSuffix = chunk
		}
	}
}

// New creates a Resolver rooted at baseDir, serving assets from baseURL.
// Script files and their manifests live under baseDir/js, style files
// under baseDir/css.
func New(baseDir, baseURL string, opts ...Option) *Resolver {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	r := &Resolver{
		baseDir:     baseDir,
		baseURL:     baseURL,
		assetSuffix: DefaultAssetSuffix,
		chunkSuffix: DefaultChunkSuffix,
		log:         slog.Default(),
	}
	r.cache, _ = lru.New[string, *Asset](defaultCacheSize)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Metadata resolves the build metadata for handle. It never fails: any
// missing or malformed manifest degrades to defaults, so the returned
// Asset is always fully populated.
func (r *Resolver) Metadata(handle string) *Asset {
	if a, ok := r.cache.Get(handle); ok {
		return a
	}
	a, err := r.Lookup(handle)
	if err != nil {
		r.log.Debug("manifest degraded to defaults", "handle", handle, "error", err)
	}
	r.cache.Add(handle, a)
	return a
}

// Lookup is the strict variant of Metadata. The returned Asset is always
// non-nil with defaults applied; the error reports any manifest that was
// missing (errors.ErrManifestNotFound) or undecodable
// (errors.ErrManifestInvalid). Lookup bypasses the cache.
func (r *Resolver) Lookup(handle string) (*Asset, error) {
	a := &Asset{
		Version:      FallbackVersion,
		Dependencies: []string{},
		JS:           []string{},
		CSS:          []string{},
		Chunks:       []string{},
	}

	var am assetManifest
	errA := r.readManifest(handle, r.assetSuffix, &am)
	if errA == nil {
		if am.Version != "" {
			a.Version = am.Version
		}
		if am.Dependencies != nil {
			a.Dependencies = am.Dependencies
		}
	}

	var cm chunkManifest
	errC := r.readManifest(handle, r.chunkSuffix, &cm)
	if errC == nil {
		if cm.JS != nil {
			a.JS = cm.JS
		}
		if cm.CSS != nil {
			a.CSS = cm.CSS
		}
		if cm.Chunks != nil {
			a.Chunks = cm.Chunks
		}
	}

	return a, errors.Join(errA, errC)
}

// readManifest decodes one manifest file into v.
func (r *Resolver) readManifest(handle, suffix string, v any) error {
	path := filepath.Join(r.baseDir, "js", handle+suffix)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return aserrors.NewManifestNotFound(handle, path)
		}
		return aserrors.NewManifestInvalid(handle, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return aserrors.NewManifestInvalid(handle, path, err)
	}
	return nil
}

// ScriptURL returns the public URL of a handle's script file.
func (r *Resolver) ScriptURL(handle string) string {
	return r.baseURL + "js/" + handle + ".js"
}

// ScriptPath returns the filesystem path of a handle's script file.
func (r *Resolver) ScriptPath(handle string) string {
	return filepath.Join(r.baseDir, "js", handle+".js")
}

// StyleURL returns the public URL of a handle's stylesheet. When rtl is
// true the right-to-left variant is returned; the variant affects only
// which physical file is served, not the handle name.
func (r *Resolver) StyleURL(handle string, rtl bool) string {
	return r.baseURL + "css/" + handle + styleExt(rtl)
}

// StylePath returns the filesystem path of a handle's stylesheet,
// honoring the RTL variant.
func (r *Resolver) StylePath(handle string, rtl bool) string {
	return filepath.Join(r.baseDir, "css", handle+styleExt(rtl))
}

func styleExt(rtl bool) string {
	if rtl {
		return "-rtl.css"
	}
	return ".css"
}
