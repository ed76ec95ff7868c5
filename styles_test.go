/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/suparena/assetstore/manifest"
)

func TestRegisterStyleAsset(t *testing.T) {
	t.Run("ChunksGetNoVersion", func(t *testing.T) {
		f := newFixture(t)
		f.writeManifest(t, "theme", manifest.DefaultAssetSuffix,
			`{"version":"5.0.0"}`)
		f.writeManifest(t, "theme", manifest.DefaultChunkSuffix,
			`{"css":["theme-chunk"]}`)

		f.assets.RegisterStyleAsset("theme", nil)

		// Chunk filenames embed a content hash; a version parameter would
		// defeat CDN caching keyed on the hashed name.
		chunk, found := f.reg.Style("theme-chunk")
		if !found {
			t.Fatal("Style chunk not registered")
		}
		if chunk.Ver != "" {
			t.Errorf("Style chunk must carry no version, got %q", chunk.Ver)
		}

		s, _ := f.reg.Style("theme")
		if s.Ver != "5.0.0" {
			t.Errorf("Entry handle keeps its own version, got %q", s.Ver)
		}
	})

	t.Run("DependencyOrder", func(t *testing.T) {
		f := newFixture(t)
		f.writeManifest(t, "theme", manifest.DefaultChunkSuffix,
			`{"css":["c1","c2"]}`)

		f.assets.RegisterStyleAsset("theme", []string{"base"})

		s, _ := f.reg.Style("theme")
		// Caller deps first, chunk deps last; styles have no declared deps.
		if !reflect.DeepEqual(s.Deps, []string{"base", "c1", "c2"}) {
			t.Errorf("Expected deps [base c1 c2], got %v", s.Deps)
		}
	})

	t.Run("SideData", func(t *testing.T) {
		f := newFixture(t)
		f.writeManifest(t, "theme", manifest.DefaultAssetSuffix, `{"version":"1.0.0"}`)

		f.assets.RegisterStyleAsset("theme", nil)

		if got := f.reg.Data("theme", DataKeyRTL); got != "replace" {
			t.Errorf("Expected rtl replace marker, got %v", got)
		}
		path, _ := f.reg.Data("theme", DataKeyPath).(string)
		want := filepath.Join(f.dir, "css", "theme.css")
		if path != want {
			t.Errorf("Expected path %q, got %q", want, path)
		}
	})

	t.Run("RTLVariant", func(t *testing.T) {
		f := newFixture(t, WithRTL(func() bool { return true }))
		f.writeManifest(t, "theme", manifest.DefaultChunkSuffix,
			`{"css":["theme-chunk"]}`)

		f.assets.RegisterStyleAsset("theme", nil)

		s, _ := f.reg.Style("theme")
		if !strings.HasSuffix(s.Src, "/css/theme-rtl.css") {
			t.Errorf("Expected RTL source, got %q", s.Src)
		}
		chunk, _ := f.reg.Style("theme-chunk")
		if !strings.HasSuffix(chunk.Src, "/css/theme-chunk-rtl.css") {
			t.Errorf("Expected RTL chunk source, got %q", chunk.Src)
		}
		path, _ := f.reg.Data("theme", DataKeyPath).(string)
		if !strings.HasSuffix(path, "theme-rtl.css") {
			t.Errorf("Expected RTL path side data, got %q", path)
		}
	})

	t.Run("IdempotentPerHandle", func(t *testing.T) {
		f := newFixture(t)

		f.assets.RegisterStyleAsset("theme", []string{"base"})
		f.assets.RegisterStyleAsset("theme", []string{"other"})

		s, _ := f.reg.Style("theme")
		if !reflect.DeepEqual(s.Deps, []string{"base"}) {
			t.Errorf("Second call must be a no-op, got deps %v", s.Deps)
		}
	})
}

func TestEnqueueStyleAsset(t *testing.T) {
	f := newFixture(t)
	f.writeManifest(t, "theme", manifest.DefaultChunkSuffix, `{"css":["theme-chunk"]}`)

	f.assets.EnqueueStyleAsset("theme", nil)

	if got := f.reg.EnqueuedStyles(); !reflect.DeepEqual(got, []string{"theme"}) {
		t.Errorf("Unexpected enqueued styles: %v", got)
	}
}
