package ipv4

import "fmt"

// AddressFormatError reports a token that matches no accepted notation or has
// an out of range component.
type AddressFormatError struct {
	// Kind names the input, "address" when empty.
	Kind   string
	Token  string
	Reason string
}

func (e *AddressFormatError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "address"
	}
	return fmt.Sprintf("invalid %s %q: %s", kind, e.Token, e.Reason)
}
