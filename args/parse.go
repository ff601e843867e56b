// Package args implements the +js(...) argument-list grammar: parsing the
// comma-separated, quote-and-backslash-escaped argument list (C2, §4.2),
// and escaping a decoded argument for safe embedding in JS source (C1, §4.1).
//
// Ported from parse_scriptlet_args / index_next_unescaped_separator /
// normalize_arg in resource_storage.rs, in the spirit of parse/quote.go's
// quoteString/unquoteString pair for the Soy string-literal grammar.
package args

import (
	"strings"
	"unicode"
)

// Parse parses the inner text of a +js(...) invocation into its argument
// list. The first element, if present, is the scriptlet name; the rest are
// positional arguments. Returns (nil, true) for an empty-or-blank input,
// and (nil, false) if the input is malformed (unterminated quote, or
// trailing content after a closing quote other than whitespace/comma).
func Parse(s string) ([]string, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}

	var out []string
	for len(s) > 0 {
		// An all-whitespace remainder (e.g. the tail left after a trailing
		// ", ") is not a terminator: it falls through to the unquoted branch
		// below, which trims it to "" and appends that as a final empty
		// argument, matching parse_scriptlet_args.
		if i := firstNonSpace(s); i > 0 {
			s = s[i:]
		}

		var arg string
		var needsTransform bool
		var separator rune

		switch c := s[0]; c {
		case '"', '\'', '`':
			separator = rune(c)
			s = s[1:]
			idx, transform := indexNextUnescapedSeparator(s, separator)
			needsTransform = transform
			if idx < 0 {
				// Unmatched opening quote.
				return nil, false
			}
			arg = s[:idx]
			s = s[idx+1:]
			if i := firstNonSpace(s); i >= 0 {
				s = s[i:]
			} else {
				s = ""
			}
			if strings.HasPrefix(s, ",") {
				s = s[1:]
			} else if s != "" {
				return nil, false
			}
		default:
			separator = ','
			idx, transform := indexNextUnescapedSeparator(s, separator)
			needsTransform = transform
			if idx < 0 {
				arg = strings.TrimRightFunc(s, unicode.IsSpace)
				s = ""
			} else {
				arg = strings.TrimRightFunc(s[:idx], unicode.IsSpace)
				s = s[idx+1:]
			}
		}

		if needsTransform {
			arg = normalizeArg(arg, separator)
		}
		out = append(out, arg)
	}

	return out, true
}

// firstNonSpace returns the index of the first non-whitespace rune in s, -1
// if s is entirely whitespace (including empty).
func firstNonSpace(s string) int {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return -1
}

// indexNextUnescapedSeparator finds the next occurrence of separator in s
// that is preceded by an even number of backslashes (i.e. not escaping the
// separator itself). Returns (-1, needsTransform) if none is found, where
// needsTransform indicates the raw token contains at least one escaped
// occurrence of separator that must be normalized out.
func indexNextUnescapedSeparator(s string, separator rune) (int, bool) {
	var (
		pos            int
		needsTransform bool
	)
	for pos < len(s) {
		rest := s[pos:]
		i := strings.IndexRune(rest, separator)
		if i < 0 {
			return -1, needsTransform
		}
		trailingEscapes := 0
		for trailingEscapes < i && strings.HasSuffix(rest[:i-trailingEscapes], "\\") {
			trailingEscapes++
		}
		if trailingEscapes%2 == 0 {
			return pos + i, needsTransform
		}
		pos += i + 1
		needsTransform = true
	}
	return -1, needsTransform
}

// normalizeArg rewrites escaped instances of separator in arg back into
// their literal form: "\\" + separator -> separator, "\\\\" -> "\\\\"
// (preserved as-is), and "\\" followed by anything else keeps the
// backslash.
func normalizeArg(arg string, separator rune) string {
	var b strings.Builder
	b.Grow(len(arg))
	escaped := false
	for _, r := range arg {
		if r == '\\' {
			if escaped {
				escaped = false
				b.WriteString(`\\`)
			} else {
				escaped = true
			}
			continue
		}
		if escaped {
			if r != separator {
				b.WriteByte('\\')
			}
			escaped = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
