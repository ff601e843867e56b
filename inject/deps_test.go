package inject

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robfig/scriptlets/catalog"
	"github.com/robfig/scriptlets/rescode"
	"github.com/robfig/scriptlets/resource"
)

// Builds the dependency graph from the "dependencies" test in
// resource_storage.rs: test.js -> permissioned.fn (perm-gated) + a.fn + b.fn
// + common.fn, with a.fn and b.fn each also depending on common.fn, plus two
// dependency cycles that must not cause non-termination.
func depsTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	const perm01 resource.PermissionMask = 0b01

	resources := []resource.Resource{
		resource.Simple("simple.fn", resource.MimeFnJavascript, "simple"),
		{
			Name:         "permissioned.fn",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("permissioned"),
			Dependencies: []string{"a.fn", "common.fn"},
			Permission:   perm01,
		},
		{
			Name:         "a.fn",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("a"),
			Dependencies: []string{"common.fn"},
		},
		{
			Name:         "b.fn",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("b"),
			Dependencies: []string{"common.fn"},
		},
		{
			Name:    "common.fn",
			Kind:    resource.KindMime(resource.MimeFnJavascript),
			Content: enc("common"),
		},
		{
			Name:         "test.js",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("function test() {}"),
			Dependencies: []string{"permissioned.fn", "a.fn", "b.fn", "common.fn"},
		},
		{
			Name:         "deploop1.fn",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("deploop1"),
			Dependencies: []string{"deploop1.fn"},
		},
		{
			Name:         "deploop2a.fn",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("deploop2a"),
			Dependencies: []string{"deploop2b.fn"},
		},
		{
			Name:         "deploop2b.fn",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("deploop2b"),
			Dependencies: []string{"deploop2a.fn"},
		},
		{
			Name:         "test-wrapper.js",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("function testWrapper() { test(arguments) }"),
			Dependencies: []string{"test.js"},
		},
		{
			Name:         "shared.js",
			Kind:         resource.KindMime(resource.MimeFnJavascript),
			Content:      enc("function shared() { }"),
			Dependencies: []string{"a.fn", "b.fn"},
		},
	}
	return catalog.FromResources(resources)
}

func names(rs []resource.Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestGatherDependencies(t *testing.T) {
	c := depsTestCatalog(t)
	const perm01 resource.PermissionMask = 0b01

	tests := []struct {
		name       string
		start      string
		perm       resource.PermissionMask
		want       []string
		wantErr    error
	}{
		{"leaf", "common.fn", 0, []string{"common.fn"}, nil},
		{"single dep", "a.fn", 0, []string{"a.fn", "common.fn"}, nil},
		{"single dep b", "b.fn", 0, []string{"b.fn", "common.fn"}, nil},
		{"permission denied", "permissioned.fn", 0, nil, rescode.ErrInsufficientPermissions},
		{"permission granted", "permissioned.fn", perm01, []string{"permissioned.fn", "a.fn", "common.fn"}, nil},
		{"permission denied transitively", "test.js", 0, nil, rescode.ErrInsufficientPermissions},
		{"permission granted transitively", "test.js", perm01, []string{"test.js", "permissioned.fn", "a.fn", "common.fn", "b.fn"}, nil},
		{"self-referential cycle terminates", "deploop1.fn", 0, []string{"deploop1.fn"}, nil},
		{"mutual cycle terminates", "deploop2a.fn", 0, []string{"deploop2a.fn", "deploop2b.fn"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var acc []resource.Resource
			err := GatherDependencies(c, tt.start, &acc, tt.perm)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GatherDependencies(%q) err = %v, want %v", tt.start, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GatherDependencies(%q): %v", tt.start, err)
			}
			if diff := cmp.Diff(tt.want, names(acc)); diff != "" {
				t.Errorf("GatherDependencies(%q) names mismatch (-want +got):\n%s", tt.start, diff)
			}
		})
	}
}
