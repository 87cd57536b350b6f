// Package ipv4 parses the address notations accepted on the command line and
// computes netmasks and masked networks over 32-bit values.
package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

const MaxPrefixLen = 32

// Token is one parsed command line address.
type Token struct {
	// Text is the argument as the user typed it.
	Text      string
	Value     uint32
	PrefixLen int
	HasPrefix bool
}

func (t Token) String() string { return t.Text }

// Octets splits v into its four bytes, most significant first.
func Octets(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// FromOctets is the inverse of Octets.
func FromOctets(o [4]byte) uint32 {
	return uint32(o[0])<<24 | uint32(o[1])<<16 | uint32(o[2])<<8 | uint32(o[3])
}

// Parse accepts a.b.c.d/n, a.b.c.d, a bare decimal integer or a 0x prefixed
// hex integer, tried in that order.
func Parse(s string) (Token, error) {
	tok := Token{Text: s}

	if ipStr, lenStr, found := strings.Cut(s, "/"); found {
		v, err := parseQuad(ipStr)
		if err != nil {
			return Token{}, &AddressFormatError{Token: s, Reason: err.Error()}
		}
		n, err := parsePrefixLen(lenStr)
		if err != nil {
			return Token{}, &AddressFormatError{Token: s, Reason: err.Error()}
		}
		tok.Value, tok.PrefixLen, tok.HasPrefix = v, n, true
		return tok, nil
	}

	if strings.Contains(s, ".") {
		v, err := parseQuad(s)
		if err != nil {
			return Token{}, &AddressFormatError{Token: s, Reason: err.Error()}
		}
		tok.Value = v
		return tok, nil
	}

	if isDigits(s) {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return Token{}, &AddressFormatError{Token: s, Reason: "decimal value exceeds 4294967295"}
		}
		tok.Value = uint32(v)
		return tok, nil
	}

	if hex, ok := cutHexPrefix(s); ok {
		if len(hex) == 0 || len(hex) > 8 {
			return Token{}, &AddressFormatError{Token: s, Reason: "hex value must have 1 to 8 digits"}
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Token{}, &AddressFormatError{Token: s, Reason: "invalid hex digits"}
		}
		tok.Value = uint32(v)
		return tok, nil
	}

	return Token{}, &AddressFormatError{Token: s, Reason: "not a dotted quad, CIDR block or integer"}
}

// ParseMaskLen parses a standalone prefix length as given to --mask.
func ParseMaskLen(s string) (int, error) {
	n, err := parsePrefixLen(s)
	if err != nil {
		return 0, &AddressFormatError{Kind: "mask", Token: s, Reason: err.Error()}
	}
	return n, nil
}

func parseQuad(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("expected 4 octets, got %d", len(parts))
	}

	var o [4]byte
	for i, p := range parts {
		if p == "" || len(p) > 3 || !isDigits(p) {
			return 0, fmt.Errorf("octet %q is not a decimal number", p)
		}
		// leading zeros read as octal elsewhere
		if len(p) > 1 && p[0] == '0' {
			return 0, fmt.Errorf("octet %q has a leading zero", p)
		}
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || n > 255 {
			return 0, fmt.Errorf("octet %q out of range 0-255", p)
		}
		o[i] = byte(n)
	}
	return FromOctets(o), nil
}

func parsePrefixLen(s string) (int, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("prefix length %q is not a number", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > MaxPrefixLen {
		return 0, fmt.Errorf("prefix length %s out of range 0-%d", s, MaxPrefixLen)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return "", false
}
