/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetstore

import (
	"testing"

	"github.com/suparena/assetstore/manifest"
)

func payloadFor(domain string) string {
	return `{"domain":"` + domain + `","locale_data":{"` + domain + `":{"":{"domain":"` + domain + `"}}}}`
}

func TestTranslations(t *testing.T) {
	t.Run("HandleFirstThenChunksInOrder", func(t *testing.T) {
		loader := mapLoader{
			"editor": payloadFor("h"),
			"c1":     payloadFor("c1"),
			"c2":     payloadFor("c2"),
		}
		f := newFixture(t, WithTranslations(loader, "myapp"))
		f.reg.SetData("editor", DataKeyChunks, []string{"c1", "c2"})

		sets := f.assets.Translations("editor")
		if len(sets) != 3 {
			t.Fatalf("Expected 3 payloads, got %d", len(sets))
		}
		for i, want := range []string{"h", "c1", "c2"} {
			if sets[i].Domain != want {
				t.Errorf("Position %d: expected %q, got %q", i, want, sets[i].Domain)
			}
		}
	})

	t.Run("EmptyPayloadsOmittedOrderPreserved", func(t *testing.T) {
		loader := mapLoader{
			"editor": payloadFor("h"),
			"c2":     payloadFor("c2"),
			// c1 has no translations at all
		}
		f := newFixture(t, WithTranslations(loader, "myapp"))
		f.reg.SetData("editor", DataKeyChunks, []string{"c1", "c2"})

		sets := f.assets.Translations("editor")
		if len(sets) != 2 {
			t.Fatalf("Expected 2 payloads, got %d", len(sets))
		}
		if sets[0].Domain != "h" || sets[1].Domain != "c2" {
			t.Errorf("Unexpected order: %q, %q", sets[0].Domain, sets[1].Domain)
		}
	})

	t.Run("MalformedPayloadTreatedAsEmpty", func(t *testing.T) {
		loader := mapLoader{
			"editor": payloadFor("h"),
			"c1":     `{"locale_data": [`,
		}
		f := newFixture(t, WithTranslations(loader, "myapp"))
		f.reg.SetData("editor", DataKeyChunks, []string{"c1"})

		sets := f.assets.Translations("editor")
		if len(sets) != 1 || sets[0].Domain != "h" {
			t.Errorf("Malformed chunk payload should be dropped, got %v", sets)
		}
	})

	t.Run("NoRecordedChunksYieldsEmpty", func(t *testing.T) {
		f := newFixture(t, WithTranslations(mapLoader{"editor": payloadFor("h")}, "myapp"))

		// No chunk list was ever attached to the handle.
		if sets := f.assets.Translations("editor"); len(sets) != 0 {
			t.Errorf("Expected empty result, got %v", sets)
		}
	})

	t.Run("EmptyChunkListYieldsHandlePayload", func(t *testing.T) {
		f := newFixture(t, WithTranslations(mapLoader{"editor": payloadFor("h")}, "myapp"))
		f.reg.SetData("editor", DataKeyChunks, []string{})

		sets := f.assets.Translations("editor")
		if len(sets) != 1 || sets[0].Domain != "h" {
			t.Errorf("Expected the handle's own payload, got %v", sets)
		}
	})

	t.Run("NoLoaderYieldsEmpty", func(t *testing.T) {
		f := newFixture(t)
		f.reg.SetData("editor", DataKeyChunks, []string{"c1"})

		if sets := f.assets.Translations("editor"); len(sets) != 0 {
			t.Errorf("Expected empty result without a loader, got %v", sets)
		}
	})

	t.Run("EndToEndWithRegistration", func(t *testing.T) {
		loader := mapLoader{
			"editor": payloadFor("h"),
			"x":      payloadFor("x"),
		}
		f := newFixture(t, WithTranslations(loader, "myapp"))
		f.writeManifest(t, "editor", manifest.DefaultChunkSuffix, `{"chunks":["x"]}`)

		f.assets.RegisterScriptAsset("editor", nil, true)

		sets := f.assets.Translations("editor")
		if len(sets) != 2 {
			t.Fatalf("Expected 2 payloads, got %d", len(sets))
		}
		if sets[0].Domain != "h" || sets[1].Domain != "x" {
			t.Errorf("Unexpected order: %q, %q", sets[0].Domain, sets[1].Domain)
		}
	})
}
