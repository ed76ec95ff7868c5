/*
Package assetstore provides a bookkeeping layer that resolves and registers
front-end assets (scripts, styles, and their build-generated chunk graphs)
exactly once per process.

Dependency lists and cache-busting versions come from build-tool-emitted
manifest files, not hardcoded configuration. Each handle has a manifest
pair next to its script file: <handle>.asset.json carries the version and
declared dependencies, <handle>.chunks.json carries the precomputed chunk
index (preloaded scripts, preloaded styles, dynamically-imported chunks).

The library follows a resolve → register → enqueue workflow:
  - Resolve: manifest.Resolver merges the manifest pair into one immutable
    Asset record; missing files degrade to defaults, never errors.
  - Register: the Assets service declares the handle and its chunk graph to
    the host registry, exactly once per handle per service instance.
    Preloaded chunks become load-time dependencies; dynamically-imported
    chunks are registered inert so the runtime can fetch them on demand.
  - Enqueue: a registered handle is marked for output on the current page.

Key Features:
  - Idempotent registration: repeated requests for a handle are no-ops
  - Total resolution: a missing or malformed manifest never aborts output
  - Deterministic dependency order: declared, then caller, then chunks
  - RTL stylesheet variants and hash-versioned style chunks
  - Translation assembly across a handle and its dynamic chunks
  - Pluggable host registry with an in-memory reference implementation

Basic Usage:

	res := manifest.New("/srv/app/assets", "https://cdn.example.com/assets")
	reg := registry.NewInMemory()
	assets := assetstore.New(res, reg,
	    assetstore.WithTranslations(i18n.NewDirLoader("/srv/app/languages"), "myapp"),
	    assetstore.WithRTL(locale.IsRTL),
	)

	// Register and emit the editor bundle with its chunk graph
	assets.EnqueueScriptAsset("editor", []string{"react"}, true)
	assets.EnqueueStyleAsset("editor", nil)

	// Later, assemble translations for the handle and its dynamic chunks
	sets := assets.Translations("editor")

The host script/style registry, the build tool producing the manifests,
and the host's translation storage are collaborators behind small
interfaces; assetstore only does the bookkeeping between them.
*/
package assetstore
