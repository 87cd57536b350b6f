package render

import (
	"fmt"
	"math/big"
	"net"

	"github.com/miekg/dns"
	"github.com/seancfoley/ipaddress-go/ipaddr"

	"github.com/jpts/incidr/pkg/ipv4"
)

// Range describes the addresses covered by a masked network.
type Range struct {
	First net.IP
	Last  net.IP
	Count *big.Int
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s (%s addresses)", r.First, r.Last, r.Count)
}

func toNetIP(v uint32) net.IP {
	o := ipv4.Octets(v)
	return net.IPv4(o[0], o[1], o[2], o[3]).To4()
}

// Summarize expands the pair's network into its prefix block.
func Summarize(m ipv4.MaskPair) (Range, error) {
	addr, err := ipaddr.NewIPAddressFromNetIP(toNetIP(m.Network))
	if err != nil {
		return Range{}, fmt.Errorf("problem converting %s: %s", toNetIP(m.Network), err)
	}

	iprange := addr.ToPrefixBlockLen(m.PrefixLen).ToSequentialRange()
	return Range{
		First: iprange.GetLower().GetNetIP(),
		Last:  iprange.GetUpper().GetNetIP(),
		Count: iprange.GetCount(),
	}, nil
}

// ReverseName returns the in-addr.arpa name for v.
func ReverseName(v uint32) (string, error) {
	name, err := dns.ReverseAddr(toNetIP(v).String())
	if err != nil {
		return "", fmt.Errorf("problem building reverse name for %s: %w", toNetIP(v), err)
	}
	return name, nil
}
