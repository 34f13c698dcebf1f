package ddns

import (
	"strings"

	"github.com/miekg/dns"
)

// Apex is the relative name of a zone's own domain.
const Apex = "@"

// RelativeName returns name relative to zone, with Apex for the zone itself.
// Names outside the zone are returned without a trailing dot.
func RelativeName(name, zone string) string {
	fqdn, origin := dns.Fqdn(name), dns.Fqdn(zone)
	if strings.EqualFold(fqdn, origin) {
		return Apex
	}
	if !dns.IsSubDomain(origin, fqdn) {
		return strings.TrimSuffix(name, ".")
	}
	labels := dns.SplitDomainName(fqdn)
	return strings.Join(labels[:len(labels)-dns.CountLabel(origin)], ".")
}

// AbsoluteName returns the fully qualified form of a zone relative name, without the trailing dot.
func AbsoluteName(name, zone string) string {
	zone = strings.TrimSuffix(zone, ".")
	if name == Apex || name == "" {
		return zone
	}
	return name + "." + zone
}

// IsRecordName reports whether name can be used as a zone relative record name.
func IsRecordName(name string) bool {
	if name == Apex {
		return true
	}
	if name == "" || strings.HasSuffix(name, ".") {
		return false
	}
	_, ok := dns.IsDomainName(name)
	return ok
}
