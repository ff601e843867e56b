package inject

import "regexp"

// functionNamePattern is grounded on extract_function_name's FUNCTION_NAME_RE
// in resource_storage.rs: anchored at the start, tolerant of arbitrary
// whitespace between "function" and the name and between the name and "(".
var functionNamePattern = regexp.MustCompile(`^function\s+([^()\{\}\s]+)\s*\(`)

// ExtractFunctionName returns the function name and true iff body matches
// ^function\s+([^()\{\}\s]+)\s*\( (C4, §4.4). Used to choose between
// function-call rendering and template rendering for a given resource body.
func ExtractFunctionName(body string) (string, bool) {
	m := functionNamePattern.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return m[1], true
}
