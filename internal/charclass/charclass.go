// Package charclass classifies UTF-16 code units as whitespace or line
// terminators, the predicate Trim uses to find the first/last non-trimmed
// code unit.
package charclass

// IsWhiteSpace reports whether a code unit is ECMAScript WhiteSpace.
func IsWhiteSpace(cu uint16) bool {
	switch cu {
	case 0x0009, // TAB
		0x000B, // VT
		0x000C, // FF
		0x0020, // SP
		0x00A0, // NBSP
		0xFEFF, // BOM / ZWNBSP
		0x1680,
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004,
		0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x202F, 0x205F, 0x3000:
		return true
	default:
		return false
	}
}

// IsLineTerminator reports whether a code unit is an ECMAScript LineTerminator.
func IsLineTerminator(cu uint16) bool {
	switch cu {
	case 0x000A, // LF
		0x000D, // CR
		0x2028, // LS
		0x2029: // PS
		return true
	default:
		return false
	}
}
