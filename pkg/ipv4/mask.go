package ipv4

// MaskPair is one netmask row and the network row it produces.
type MaskPair struct {
	PrefixLen int
	Netmask   uint32
	Network   uint32
}

// Entry is a parsed token with the mask pairs to display under it.
type Entry struct {
	Token Token
	Masks []MaskPair
}

// Netmask returns the value with the top n bits set.
func Netmask(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n >= MaxPrefixLen {
		return ^uint32(0)
	}
	return ^uint32(0) << (MaxPrefixLen - n)
}

// Mask pairs addr with Netmask(n).
func Mask(addr uint32, n int) MaskPair {
	nm := Netmask(n)
	return MaskPair{PrefixLen: n, Netmask: nm, Network: addr & nm}
}

// Apply builds the entry for tok. A CIDR token uses its own prefix length and
// ignores masks; a bare token gets one pair per mask, in order.
func Apply(tok Token, masks []int) Entry {
	e := Entry{Token: tok}
	if tok.HasPrefix {
		e.Masks = []MaskPair{Mask(tok.Value, tok.PrefixLen)}
		return e
	}
	for _, n := range masks {
		e.Masks = append(e.Masks, Mask(tok.Value, n))
	}
	return e
}

// ParseAll parses every token and mask before anything is applied, so a bad
// argument anywhere fails the whole batch.
func ParseAll(tokens []string, masks []string) ([]Entry, error) {
	lens := make([]int, 0, len(masks))
	for _, m := range masks {
		n, err := ParseMaskLen(m)
		if err != nil {
			return nil, err
		}
		lens = append(lens, n)
	}

	entries := make([]Entry, 0, len(tokens))
	for _, s := range tokens {
		tok, err := Parse(s)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Apply(tok, lens))
	}
	return entries, nil
}
