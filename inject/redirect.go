package inject

import "github.com/robfig/scriptlets/catalog"

// Redirect resolves ident via c and, if the resource is redirect-eligible
// (default permission, Mime kind, MIME supports redirect), returns its
// data: URL form (C8, spec.md §4.8).
func Redirect(c *catalog.Catalog, ident string) (string, bool) {
	r, ok := c.Resolve(ident)
	if !ok {
		return "", false
	}
	if !r.Permission.IsDefault() {
		return "", false
	}
	if !r.Kind.SupportsRedirect() {
		return "", false
	}
	mime, ok := r.Kind.Mime()
	if !ok {
		return "", false
	}
	return "data:" + string(mime) + ";base64," + r.Content, true
}
