// Package scriptlets is the public facade over the catalog and injection
// machinery: add resources, then ask for a redirect data-URL or an
// assembled injection program.
//
// Modeled on soy.go's Tofu: a thin struct wrapping the lower packages,
// exposing the handful of operations callers actually need.
package scriptlets

import (
	"github.com/robfig/scriptlets/catalog"
	"github.com/robfig/scriptlets/inject"
	"github.com/robfig/scriptlets/resource"
)

// Store is the catalog of resources plus the operations that read it.
type Store struct {
	catalog *catalog.Catalog
}

// New returns an empty Store.
func New() *Store {
	return &Store{catalog: catalog.New()}
}

// FromResources builds a Store from many resources at once. Per-resource
// errors are silently swallowed; a resource that fails to add is simply
// absent, and downstream queries will miss it.
func FromResources(resources []resource.Resource) *Store {
	return &Store{catalog: catalog.FromResources(resources)}
}

// AddResource adds r to the store. See catalog.Catalog.Add for validation
// rules and atomicity guarantees.
func (s *Store) AddResource(r resource.Resource) error {
	return s.catalog.Add(r)
}

// GetRedirectResource returns the data: URL for ident, if it's eligible for
// redirect use (C8, spec.md §4.8).
func (s *Store) GetRedirectResource(ident string) (string, bool) {
	return inject.Redirect(s.catalog, ident)
}

// GetScriptletResources assembles a batch of +js(...) invocations into a
// single injectable JS program (C7, spec.md §4.7). Failing invocations are
// dropped silently; see spec.md §9 for the one deliberately-preserved
// partial-dependency quirk this implies.
func (s *Store) GetScriptletResources(invocations []Invocation) string {
	return inject.Assemble(s.catalog, toInjectInvocations(invocations))
}

// GetScriptletResource resolves a single invocation and surfaces its error,
// for white-box testing of the dependency-gathering and error-dropping
// behavior that GetScriptletResources hides (spec.md §7: "Surface errors
// only through the single-invocation query variant intended for testing").
// deps is the caller's dependency accumulator, shared across calls exactly
// as the underlying inject.Resolve expects.
func (s *Store) GetScriptletResource(raw string, perm resource.PermissionMask, deps *[]resource.Resource) (string, error) {
	return inject.Resolve(s.catalog, raw, perm, deps)
}

// Invocation pairs the raw +js(...) argument text with the permission mask
// of the filter rule that produced it.
type Invocation struct {
	Raw        string
	Permission resource.PermissionMask
}

func toInjectInvocations(invocations []Invocation) []inject.Invocation {
	out := make([]inject.Invocation, len(invocations))
	for i, inv := range invocations {
		out[i] = inject.Invocation{Raw: inv.Raw, Permission: inv.Permission}
	}
	return out
}
