// Package resource defines the catalog's unit of storage: a named JS
// resource (scriptlet or static file), its MIME capabilities, and the
// permission mask gating who may inject it.
package resource

import "encoding/base64"

// PermissionMask is an 8-bit capability set. A filter rule may invoke a
// resource only if the filter's mask is a bitwise superset of the
// resource's mask. The zero value is the default, unrestricted mask.
type PermissionMask uint8

// IsDefault reports whether m is the zero (unrestricted) mask.
func (m PermissionMask) IsDefault() bool {
	return m == 0
}

// Allows reports whether filter is a bitwise superset of m, i.e. whether a
// filter carrying filter is authorized to invoke a resource carrying m.
func (m PermissionMask) Allows(filter PermissionMask) bool {
	return m&filter == m
}

// MimeType is the closed set of content types a Mime-kind resource may
// carry. Capabilities are looked up via the methods below rather than
// stored per-resource, since they're a function of the MIME string alone.
type MimeType string

// The two MIME types with special injection semantics. Any other MimeType
// value is treated as "textual but not injectable" (e.g. text/html) unless
// it's recognized as binary by Textual below.
const (
	MimeApplicationJavascript MimeType = "application/javascript"
	MimeFnJavascript          MimeType = "fn/javascript"
)

// nonTextualMimes lists binary MIME types that are redirect-only. This is
// necessarily an incomplete enumeration of "all binary, e.g. image/*"; the
// catalog only needs to distinguish "textual" from "not", and this list
// covers the cases the subsystem is expected to see in practice.
var nonTextualMimes = map[MimeType]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp":  true,
	"font/woff2": true,
}

// Textual reports whether content of this MIME type must be valid UTF-8.
func (m MimeType) Textual() bool {
	return !nonTextualMimes[m]
}

// SupportsDependencies reports whether resources of this MIME type may
// declare a non-empty Dependencies list. Only fn/javascript may.
func (m MimeType) SupportsDependencies() bool {
	return m == MimeFnJavascript
}

// SupportsScriptletInjection reports whether this MIME type may be the
// target of a +js(...) invocation. Only application/javascript and
// fn/javascript qualify.
func (m MimeType) SupportsScriptletInjection() bool {
	return m == MimeApplicationJavascript || m == MimeFnJavascript
}

// SupportsRedirect reports whether this MIME type may back a $redirect
// response. fn/javascript is a synthetic type with no standalone file
// representation, so it cannot.
func (m MimeType) SupportsRedirect() bool {
	return m != MimeFnJavascript
}

// Kind discriminates a resource body between the "Template" form
// (positional {{i}} placeholders, no dependencies, no redirect) and the
// "Mime" form (a MIME-typed blob with MIME-derived capabilities).
type Kind struct {
	template bool
	mime     MimeType
}

// KindTemplate returns the Template kind.
func KindTemplate() Kind {
	return Kind{template: true}
}

// KindMime returns the Mime(m) kind.
func KindMime(m MimeType) Kind {
	return Kind{mime: m}
}

// IsTemplate reports whether k is the Template kind.
func (k Kind) IsTemplate() bool {
	return k.template
}

// Mime returns the MIME type of k and true, or ("", false) if k is Template.
func (k Kind) Mime() (MimeType, bool) {
	if k.template {
		return "", false
	}
	return k.mime, true
}

// SupportsDependencies mirrors spec.md's capability table: Template never
// supports dependencies; Mime delegates to its MimeType.
func (k Kind) SupportsDependencies() bool {
	if k.template {
		return false
	}
	return k.mime.SupportsDependencies()
}

// SupportsScriptletInjection: Template always qualifies; Mime delegates.
func (k Kind) SupportsScriptletInjection() bool {
	if k.template {
		return true
	}
	return k.mime.SupportsScriptletInjection()
}

// SupportsRedirect: Template never qualifies; Mime delegates.
func (k Kind) SupportsRedirect() bool {
	if k.template {
		return false
	}
	return k.mime.SupportsRedirect()
}

// Textual: Template bodies are always textual; Mime delegates.
func (k Kind) Textual() bool {
	if k.template {
		return true
	}
	return k.mime.Textual()
}

// Resource is the unit of storage in a Catalog.
type Resource struct {
	// Name is the canonical identifier, case-sensitive and unique across
	// the catalog.
	Name string
	// Aliases are zero or more alternative identifiers, each resolving to
	// Name with a single hop (no transitive alias chains).
	Aliases []string
	Kind    Kind
	// Content is the base64-encoded body.
	Content string
	// Dependencies is the ordered list of other resource names this
	// resource requires; only meaningful when Kind.SupportsDependencies().
	Dependencies []string
	Permission   PermissionMask
}

// Simple builds the common case: a dependency-free, default-permission
// resource with no aliases, given its content as raw text.
func Simple(name string, mime MimeType, content string) Resource {
	return Resource{
		Name:    name,
		Kind:    KindMime(mime),
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
	}
}
