package inject

import (
	"github.com/robfig/scriptlets/catalog"
	"github.com/robfig/scriptlets/resource"
)

// GatherDependencies transitively collects the resources named by newName
// and its declared dependencies into acc, deduplicating by name and
// enforcing filterPermission at every hop (C6, spec.md §4.6).
//
// acc doubles as the visited set: an already-present name short-circuits
// the recursion, which is what makes a dependency cycle harmless without a
// separate visited map. Pre-order by each resource's Dependencies list; no
// topological guarantee is made or needed, since JS function declarations
// are hoisted within their script.
//
// A resource is appended to acc before its own Dependencies are walked, and
// nothing is removed on error: if a later hop fails, the resources already
// appended stay in acc.
func GatherDependencies(c *catalog.Catalog, newName string, acc *[]resource.Resource, filterPermission resource.PermissionMask) error {
	for _, dep := range *acc {
		if dep.Name == newName {
			return nil
		}
	}

	r, err := c.ResolvePermissioned(newName, filterPermission)
	if err != nil {
		return err
	}

	*acc = append(*acc, r)

	for _, dep := range r.Dependencies {
		if err := GatherDependencies(c, dep, acc, filterPermission); err != nil {
			return err
		}
	}

	return nil
}
