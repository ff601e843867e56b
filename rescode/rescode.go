// Package rescode defines the two disjoint, tagged error taxonomies used by
// the resource catalog: errors that can occur while adding a resource, and
// errors that can occur while resolving a single scriptlet invocation.
//
// Modeled on errortypes.ErrFilePos: a small concrete type carrying a Code,
// rather than opaque fmt.Errorf strings, so callers can distinguish failure
// cases with errors.Is instead of string-matching.
package rescode

import "fmt"

// AddCode enumerates the ways catalog.Add can fail.
type AddCode int

const (
	InvalidBase64Content AddCode = iota + 1
	InvalidUtf8Content
	NameAlreadyAdded
	ContentTypeDoesNotSupportDependencies
)

func (c AddCode) String() string {
	switch c {
	case InvalidBase64Content:
		return "invalid base64 content"
	case InvalidUtf8Content:
		return "invalid utf-8 content"
	case NameAlreadyAdded:
		return "resource name already added"
	case ContentTypeDoesNotSupportDependencies:
		return "resource content type does not support dependencies"
	default:
		return "unknown add-resource error"
	}
}

// AddResourceError is returned by catalog.Add.
type AddResourceError struct {
	Code AddCode
}

func (e *AddResourceError) Error() string {
	return e.Code.String()
}

// Is lets errors.Is(err, rescode.ErrNameAlreadyAdded) match by Code against
// the exported Err* sentinels, without requiring callers to construct an
// *AddResourceError to compare against.
func (e *AddResourceError) Is(target error) bool {
	if other, ok := target.(*AddResourceError); ok {
		return other.Code == e.Code
	}
	return false
}

// NewAddResourceError constructs an *AddResourceError for the given code.
func NewAddResourceError(code AddCode) error {
	return &AddResourceError{Code: code}
}

// ScriptletCode enumerates the ways resolving a single +js(...) invocation
// can fail.
type ScriptletCode int

const (
	NoMatchingScriptlet ScriptletCode = iota + 1
	MissingScriptletName
	ScriptletArgObjectSyntaxUnsupported
	CorruptScriptletContent
	ContentTypeNotInjectable
	InsufficientPermissions
)

func (c ScriptletCode) String() string {
	switch c {
	case NoMatchingScriptlet:
		return "no scriptlet has the provided name"
	case MissingScriptletName:
		return "no scriptlet name was provided"
	case ScriptletArgObjectSyntaxUnsupported:
		return "object syntax for scriptlet arguments is unsupported"
	case CorruptScriptletContent:
		return "scriptlet content was corrupted"
	case ContentTypeNotInjectable:
		return "resource content type cannot be used for a scriptlet injection"
	case InsufficientPermissions:
		return "filter rule is not authorized to inject the intended scriptlet"
	default:
		return "unknown scriptlet-resource error"
	}
}

// ScriptletResourceError is returned by the single-invocation resolution
// path (see inject.Resolve / scriptlets.Store.GetScriptletResource).
type ScriptletResourceError struct {
	Code ScriptletCode
	// Ident is the raw identifier being resolved, when known; included for
	// diagnostics, not part of equality.
	Ident string
}

func (e *ScriptletResourceError) Error() string {
	if e.Ident == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %q", e.Code, e.Ident)
}

func (e *ScriptletResourceError) Is(target error) bool {
	if other, ok := target.(*ScriptletResourceError); ok {
		return other.Code == e.Code
	}
	return false
}

// NewScriptletResourceError constructs a *ScriptletResourceError.
func NewScriptletResourceError(code ScriptletCode, ident string) error {
	return &ScriptletResourceError{Code: code, Ident: ident}
}

// Sentinels for use with errors.Is, e.g. errors.Is(err, rescode.ErrNameAlreadyAdded).
var (
	ErrInvalidBase64Content                  = &AddResourceError{Code: InvalidBase64Content}
	ErrInvalidUtf8Content                    = &AddResourceError{Code: InvalidUtf8Content}
	ErrNameAlreadyAdded                       = &AddResourceError{Code: NameAlreadyAdded}
	ErrContentTypeDoesNotSupportDependencies = &AddResourceError{Code: ContentTypeDoesNotSupportDependencies}

	ErrNoMatchingScriptlet                 = &ScriptletResourceError{Code: NoMatchingScriptlet}
	ErrMissingScriptletName                = &ScriptletResourceError{Code: MissingScriptletName}
	ErrScriptletArgObjectSyntaxUnsupported = &ScriptletResourceError{Code: ScriptletArgObjectSyntaxUnsupported}
	ErrCorruptScriptletContent             = &ScriptletResourceError{Code: CorruptScriptletContent}
	ErrContentTypeNotInjectable            = &ScriptletResourceError{Code: ContentTypeNotInjectable}
	ErrInsufficientPermissions             = &ScriptletResourceError{Code: InsufficientPermissions}
)
