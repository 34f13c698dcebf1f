package ddns

import (
	"fmt"
	"net/netip"

	"github.com/samber/lo"
)

// ExternalInterface is the interface name given to an externally discovered IPv4 address.
const ExternalInterface = "external"

// NamedAddress is an address and the interface it belongs to.
type NamedAddress struct {
	Interface string
	Addr      netip.Addr
}

func (na NamedAddress) String() string {
	return na.Interface + "=" + na.Addr.String()
}

// Snapshot is a point-in-time capture of the addresses known to the host.
//
// V4 only holds IPv4 addresses and V6 only holds IPv6 addresses.
// A Snapshot must not be modified after construction;
// it is safe to share between goroutines.
type Snapshot struct {
	V4 []NamedAddress
	V6 []NamedAddress
}

// NewSnapshot sorts local into address families and,
// if external is valid, appends it to the IPv4 list as ExternalInterface.
// IPv4-mapped IPv6 addresses are treated as IPv4.
func NewSnapshot(local []NamedAddress, external netip.Addr) (*Snapshot, error) {
	s := &Snapshot{}
	for _, na := range local {
		addr := na.Addr.Unmap()
		switch {
		case addr.Is4():
			s.V4 = append(s.V4, NamedAddress{Interface: na.Interface, Addr: addr})
		case addr.Is6():
			s.V6 = append(s.V6, NamedAddress{Interface: na.Interface, Addr: addr})
		default:
			return nil, fmt.Errorf("interface %s has an invalid address", na.Interface)
		}
	}
	if external.IsValid() {
		external = external.Unmap()
		if !external.Is4() {
			return nil, fmt.Errorf("external address %s is not an IPv4 address", external)
		}
		s.V4 = append(s.V4, NamedAddress{Interface: ExternalInterface, Addr: external})
	}
	return s, nil
}

// Resolve finds the address that should back record.
//
// A records are looked up in V4 and AAAA records in V6.
// If more than one entry shares the interface name, the last one wins.
func (s *Snapshot) Resolve(record DesiredRecord) (NamedAddress, error) {
	var list []NamedAddress
	var family string
	switch record.Type {
	case A:
		list, family = s.V4, "IPv4"
	case AAAA:
		list, family = s.V6, "IPv6"
	default:
		return NamedAddress{}, &UnsupportedRecordTypeError{Type: record.Type}
	}

	matches := lo.Filter(list, func(na NamedAddress, _ int) bool {
		return na.Interface == record.Interface
	})
	if len(matches) == 0 {
		return NamedAddress{}, &InterfaceNotFoundError{Interface: record.Interface, Family: family}
	}
	return matches[len(matches)-1], nil
}
