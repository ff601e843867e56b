// Package inject implements the rendering half of the subsystem: template
// substitution and function-call synthesis (C3/C4, spec.md §4.3-4.4), the
// dependency resolver (C6, §4.6), the injection assembler (C7, §4.7), and
// the redirect formatter (C8, §4.8).
//
// Grounded on soyjs/generator.go and soyjs/formatters.go (robfig/soy): both
// turn a parsed template plus argument values into an emitted JS string,
// the same shape C3/C7 take here, just without a full template language.
package inject

import "regexp"

// placeholderPattern precompiles the nine {{1}}..{{9}} matchers once at
// package init, mirroring the static TEMPLATE_ARGUMENT_RE table in
// resource_storage.rs rather than recompiling a regex per call.
var placeholderPattern [9]*regexp.Regexp

func init() {
	for i := 0; i < 9; i++ {
		placeholderPattern[i] = regexp.MustCompile(`\{\{` + string(rune('1'+i)) + `\}\}`)
	}
}

// RenderTemplate substitutes the first occurrence of each {{i}} (for
// i = 1..min(9, len(args))) with the corresponding escaped argument (C3,
// §4.3). Only the first occurrence of each placeholder is replaced — a
// repeated {{i}} later in the body is left as literal text, matching
// Rust's Regex::replace (single-match) semantics in the original. Arguments
// beyond the ninth are silently dropped; unmatched placeholders are left as
// literal text.
//
// Replacement is done with a plain string splice rather than the regexp
// package's replace helpers, so an argument containing $ is never
// interpreted as a back-reference and is emitted verbatim.
func RenderTemplate(body string, args []string) string {
	n := len(args)
	if n > 9 {
		n = 9
	}
	for i := 0; i < n; i++ {
		loc := placeholderPattern[i].FindStringIndex(body)
		if loc == nil {
			continue
		}
		body = body[:loc[0]] + args[i] + body[loc[1]:]
	}
	return body
}
