package hpack

// isValidHeaderNameByte reports whether b may appear in a header name:
// lowercase letters, digits, '-', '_', or ':'. Uppercase is rejected —
// names must already be lowercased before encoding, per RFC 7541
// Section 8.1.2.
func isValidHeaderNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == ':':
		return true
	default:
		return false
	}
}

// ValidHeaderName reports whether name is a nonempty, lowercase,
// HPACK-safe header field name.
func ValidHeaderName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isValidHeaderNameByte(name[i]) {
			return false
		}
	}
	return true
}

// isControlByte reports whether b is a C0 control byte or DEL.
func isControlByte(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// ValidHeaderValue reports whether value contains no control byte
// other than horizontal tab.
func ValidHeaderValue(value string) bool {
	for i := 0; i < len(value); i++ {
		b := value[i]
		if isControlByte(b) && b != '\t' {
			return false
		}
	}
	return true
}

// hpackSafeString additionally enforces the byte-length cap used by
// the encoder for outgoing strings.
func hpackSafeString(s string, maxLen int) bool {
	if maxLen > 0 && len(s) > maxLen {
		return false
	}
	return ValidHeaderValue(s)
}
