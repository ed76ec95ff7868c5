/*
Package errors provides semantic error types for the AssetStore library.

The package defines the manifest-level error scenarios with specific types
that can be checked using the standard errors.Is() function or the provided
helper functions.

Common Errors:

	var (
	    ErrManifestNotFound = errors.New("asset manifest not found")
	    ErrManifestInvalid  = errors.New("asset manifest invalid")
	)

Usage:

	// Check error type
	asset, err := resolver.Lookup("editor")
	if err != nil {
	    if errors.IsManifestNotFound(err) {
	        // Handle may legitimately ship without manifests
	        return asset, nil
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewManifestNotFound("editor", "/assets/js/editor.asset.json")
	err := errors.NewManifestInvalid("editor", "/assets/js/editor.asset.json", decodeErr)

Note that the registration core never surfaces these errors: resolution is
total and degrades to defaults. The typed errors exist for strict callers
such as build tooling (cmd/assetinfo) that want to distinguish a missing
manifest from an undecodable one.
*/
package errors
