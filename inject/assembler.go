package inject

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/robfig/scriptlets/catalog"
	"github.com/robfig/scriptlets/args"
	"github.com/robfig/scriptlets/rescode"
	"github.com/robfig/scriptlets/resource"
)

// Invocation pairs the raw +js(...) argument text with the permission mask
// of the filter rule that produced it.
type Invocation struct {
	Raw        string
	Permission resource.PermissionMask
}

// WithJSExtension canonicalizes a scriptlet name by appending ".js" if it
// isn't already present. Idempotent: WithJSExtension(WithJSExtension(n)) ==
// WithJSExtension(n).
func WithJSExtension(name string) string {
	if strings.HasSuffix(name, ".js") {
		return name
	}
	return name + ".js"
}

// Resolve renders a single +js(...) invocation against c, appending any
// newly required dependencies to deps (C7 steps a-d, spec.md §4.7). This
// is the error-surfacing path intended for white-box/unit testing; the
// batch entry point Assemble swallows these errors per invocation instead.
//
// deps accumulates across calls from the same caller by design: a shared
// accumulator lets callers observe the "partial dependencies added before a
// later failure" behavior described in spec.md §9's Open Question.
func Resolve(c *catalog.Catalog, raw string, filterPermission resource.PermissionMask, deps *[]resource.Resource) (string, error) {
	parsed, ok := args.Parse(raw)
	if !ok {
		// Guaranteed valid at filter-parsing time per spec.md §4.7; an
		// unparseable invocation simply has no scriptlet name.
		return "", rescode.NewScriptletResourceError(rescode.MissingScriptletName, raw)
	}
	if len(parsed) == 0 {
		return "", rescode.NewScriptletResourceError(rescode.MissingScriptletName, raw)
	}

	name := WithJSExtension(parsed[0])
	scriptletArgs := parsed[1:]

	if len(scriptletArgs) == 1 && strings.HasPrefix(scriptletArgs[0], "{") && strings.HasSuffix(scriptletArgs[0], "}") {
		return "", rescode.NewScriptletResourceError(rescode.ScriptletArgObjectSyntaxUnsupported, name)
	}

	r, err := c.ResolvePermissioned(name, filterPermission)
	if err != nil {
		return "", err
	}

	if !r.Kind.SupportsScriptletInjection() {
		return "", rescode.NewScriptletResourceError(rescode.ContentTypeNotInjectable, name)
	}

	for _, dep := range r.Dependencies {
		if err := GatherDependencies(c, dep, deps, filterPermission); err != nil {
			return "", err
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(r.Content)
	if err != nil || !utf8.Valid(decoded) {
		return "", rescode.NewScriptletResourceError(rescode.CorruptScriptletContent, name)
	}
	body := string(decoded)

	if fnName, ok := ExtractFunctionName(body); ok {
		alreadyPresent := false
		for _, dep := range *deps {
			if dep.Name == r.Name {
				alreadyPresent = true
				break
			}
		}
		if !alreadyPresent {
			*deps = append(*deps, r)
		}

		quoted := make([]string, len(scriptletArgs))
		for i, a := range scriptletArgs {
			quoted[i] = args.Escape(a, true)
		}
		return fnName + "(" + strings.Join(quoted, ", ") + ")", nil
	}

	unquoted := make([]string, len(scriptletArgs))
	for i, a := range scriptletArgs {
		unquoted[i] = args.Escape(a, false)
	}
	return RenderTemplate(body, unquoted), nil
}

// Assemble renders a batch of invocations against c into a single injectable
// JS program (C7 step 1-3, spec.md §4.7): dependencies (in first-encountered
// order, across the whole batch) followed by each invocation's rendered
// call, wrapped in try/catch. Invocations that fail are dropped silently;
// dependencies already gathered for them before the failure remain.
func Assemble(c *catalog.Catalog, invocations []Invocation) string {
	var deps []resource.Resource
	var rendered strings.Builder

	for _, inv := range invocations {
		text, err := Resolve(c, inv.Raw, inv.Permission, &deps)
		if err != nil {
			continue
		}
		rendered.WriteString("try {\n")
		rendered.WriteString(text)
		rendered.WriteString("\n} catch ( e ) { }\n")
	}

	var out strings.Builder
	for _, dep := range deps {
		decoded, err := base64.StdEncoding.DecodeString(dep.Content)
		if err != nil || !utf8.Valid(decoded) {
			continue
		}
		out.Write(decoded)
		out.WriteByte('\n')
	}
	out.WriteString(rendered.String())

	return out.String()
}
