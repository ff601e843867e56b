package rescode

import (
	"errors"
	"testing"
)

func TestAddResourceErrorIs(t *testing.T) {
	err := NewAddResourceError(NameAlreadyAdded)
	if !errors.Is(err, ErrNameAlreadyAdded) {
		t.Error("errors.Is should match the sentinel for the same code")
	}
	if errors.Is(err, ErrInvalidBase64Content) {
		t.Error("errors.Is should not match a sentinel for a different code")
	}
}

func TestScriptletResourceErrorIs(t *testing.T) {
	err := NewScriptletResourceError(InsufficientPermissions, "evil.fn")
	if !errors.Is(err, ErrInsufficientPermissions) {
		t.Error("errors.Is should match regardless of Ident")
	}
	if errors.Is(err, ErrNoMatchingScriptlet) {
		t.Error("errors.Is should not match a sentinel for a different code")
	}
}

func TestScriptletResourceErrorMessage(t *testing.T) {
	withIdent := NewScriptletResourceError(NoMatchingScriptlet, "missing.js")
	if got, want := withIdent.Error(), `no scriptlet has the provided name: "missing.js"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &ScriptletResourceError{Code: MissingScriptletName}
	if got, want := bare.Error(), "no scriptlet name was provided"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAddCodeStringUnknown(t *testing.T) {
	if got := AddCode(99).String(); got != "unknown add-resource error" {
		t.Errorf("String() = %q, want the unknown-code fallback", got)
	}
}
