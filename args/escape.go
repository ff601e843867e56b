package args

// escapeTable maps a byte needing a two-character escape sequence to that
// sequence's second character, and 'u' for bytes that need a \u00XX escape.
// Grounded on the ESCAPED lookup table in stringify_arg (resource_storage.rs):
// a single pass over the input bytes, O(1) per byte.
var escapeTable = [256]byte{
	0x00: 'u', 0x01: 'u', 0x02: 'u', 0x03: 'u', 0x04: 'u', 0x05: 'u', 0x06: 'u', 0x07: 'u',
	0x08: 'b', 0x09: 't', 0x0a: 'n', 0x0b: 'u', 0x0c: 'f', 0x0d: 'r', 0x0e: 'u', 0x0f: 'u',
	0x10: 'u', 0x11: 'u', 0x12: 'u', 0x13: 'u', 0x14: 'u', 0x15: 'u', 0x16: 'u', 0x17: 'u',
	0x18: 'u', 0x19: 'u', 0x1a: 'u', 0x1b: 'u', 0x1c: 'u', 0x1d: 'u', 0x1e: 'u', 0x1f: 'u',
	'"':  '"',
	'\\': '\\',
	0x7f: 'u',
}

const hexDigits = "0123456789abcdef"

// Escape encodes s as a JavaScript string literal body (C1, §4.1). When
// quoted is true, the result is wrapped in double quotes for use as a
// function-call argument; when false, it's the bare inner form for
// interpolation into a template placeholder.
func Escape(s string, quoted bool) string {
	out := make([]byte, 0, len(s)+2)
	if quoted {
		out = append(out, '"')
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		esc := escapeTable[c]
		switch esc {
		case 0:
			out = append(out, c)
		case 'u':
			out = append(out, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			out = append(out, '\\', esc)
		}
	}
	if quoted {
		out = append(out, '"')
	}
	return string(out)
}
