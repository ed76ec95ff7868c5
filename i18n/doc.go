/*
Package i18n provides the translation collaborator for AssetStore.

A Loader answers "what is the raw translation payload for this handle in
this text domain". The contract is total: absence is an empty string, not
an error. The Translation Assembler in the root package filters empties,
decodes the rest with Decode, and preserves order end-to-end.

	loader := i18n.NewDirLoader("/srv/app/languages")
	raw := loader.LoadTranslations("editor", "myapp")
	set, ok := i18n.Decode(raw)

Payloads use the Jed JSON format produced by translation build tooling:

	{
	  "domain": "myapp",
	  "locale_data": {
	    "myapp": {
	      "": { "domain": "myapp", "lang": "de", "plural-forms": "..." },
	      "Save": [ "Speichern" ]
	    }
	  }
	}

Malformed payloads decode to ok=false and are treated exactly like absent
ones; the assembler drops them without reordering the rest.
*/
package i18n
