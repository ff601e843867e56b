// Package catalog implements the Resource Catalog (C5, spec.md §4.5): a
// store of resources keyed by canonical name, with a one-hop alias table
// and permission-checked lookup.
//
// Modeled on template.Registry (robfig/soy): a name-keyed store built up by
// repeated validated inserts, then treated as read-only for lookups.
package catalog

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/robfig/scriptlets/rescode"
	"github.com/robfig/scriptlets/resource"
)

// Catalog stores resources by canonical name plus an alias-to-canonical
// map. The zero value is not usable; construct with New.
type Catalog struct {
	resources map[string]resource.Resource
	aliases   map[string]string
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{
		resources: make(map[string]resource.Resource),
		aliases:   make(map[string]string),
	}
}

// Add validates and inserts r. Insertion is atomic: on any error, the
// catalog is left unchanged.
func (c *Catalog) Add(r resource.Resource) error {
	if mime, ok := r.Kind.Mime(); ok {
		if len(r.Dependencies) > 0 && !mime.SupportsDependencies() {
			return rescode.NewAddResourceError(rescode.ContentTypeDoesNotSupportDependencies)
		}
		decoded, err := base64.StdEncoding.DecodeString(r.Content)
		if err != nil {
			return rescode.NewAddResourceError(rescode.InvalidBase64Content)
		}
		if mime.Textual() && !utf8.Valid(decoded) {
			return rescode.NewAddResourceError(rescode.InvalidUtf8Content)
		}
	}

	idents := make([]string, 0, len(r.Aliases)+1)
	idents = append(idents, r.Name)
	idents = append(idents, r.Aliases...)
	for _, ident := range idents {
		if _, ok := c.resources[ident]; ok {
			return rescode.NewAddResourceError(rescode.NameAlreadyAdded)
		}
		if _, ok := c.aliases[ident]; ok {
			return rescode.NewAddResourceError(rescode.NameAlreadyAdded)
		}
	}

	for _, alias := range r.Aliases {
		c.aliases[alias] = r.Name
	}
	c.resources[r.Name] = r

	return nil
}

// FromResources is a convenience constructor for building a Catalog from
// many resources at once. Per-element errors are silently swallowed — a
// resource that fails to add is simply absent from the resulting catalog.
func FromResources(resources []resource.Resource) *Catalog {
	c := New()
	for _, r := range resources {
		_ = c.Add(r)
	}
	return c
}

// Resolve returns the resource named by ident, following a single alias
// hop if ident isn't itself a canonical name.
func (c *Catalog) Resolve(ident string) (resource.Resource, bool) {
	if r, ok := c.resources[ident]; ok {
		return r, true
	}
	if canonical, ok := c.aliases[ident]; ok {
		r, ok := c.resources[canonical]
		return r, ok
	}
	return resource.Resource{}, false
}

// ResolvePermissioned resolves ident and additionally verifies that the
// resource's permission mask is satisfied by filter.
func (c *Catalog) ResolvePermissioned(ident string, filter resource.PermissionMask) (resource.Resource, error) {
	r, ok := c.Resolve(ident)
	if !ok {
		return resource.Resource{}, rescode.NewScriptletResourceError(rescode.NoMatchingScriptlet, ident)
	}
	if !r.Permission.Allows(filter) {
		return resource.Resource{}, rescode.NewScriptletResourceError(rescode.InsufficientPermissions, ident)
	}
	return r, nil
}
