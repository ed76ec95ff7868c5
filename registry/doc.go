/*
Package registry defines the asset registry collaborator interface and an
in-memory reference implementation.

The Registry interface is the boundary between the AssetStore bookkeeping
core and the host environment that actually emits script and style tags.
The core only ever calls register/enqueue/side-data operations; it never
inspects host state beyond the side data it wrote itself.

Registry Interface:

	type Registry interface {
	    RegisterScript(handle, src string, deps []string, ver string, inFooter bool) bool
	    RegisterStyle(handle, src string, deps []string, ver, media string) bool
	    RegisterScriptModule(handle, src string, deps []string, ver string)
	    EnqueueScript(handle string)
	    EnqueueStyle(handle string)
	    SetData(handle, key string, value any) bool
	    Data(handle, key string) any
	}

Side data is a secondary key-value store keyed by handle. The registrars
use it to record chunk lists, RTL substitution markers, and resolved file
paths; the translation assembler reads the chunk lists back.

Implementations:
  - InMemory: thread-safe in-memory implementation for tests and for hosts
    that render page output from the recorded entries themselves.

Hosts with their own native registries implement the interface directly.
*/
package registry
