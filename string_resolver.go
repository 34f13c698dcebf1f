package ddns

import (
	"context"
	"fmt"
	"net/netip"
)

// FromString constructs a resolver that always returns the IP parsed from addr.
// It is used for a statically configured external address.
func FromString(addr string) (Resolver, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse IP: %w", err)
	}
	return stringResolver{addr: ip}, nil
}

type stringResolver struct {
	addr netip.Addr
}

func (s stringResolver) Resolve(context.Context) ([]netip.Addr, error) {
	return []netip.Addr{s.addr}, nil
}
