package ddns

import (
	"context"
	"net/netip"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Resolver looks up addresses from somewhere other than the local interface table,
// such as a public IP echo service.
type Resolver interface {
	Resolve(context.Context) ([]netip.Addr, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(context.Context) ([]netip.Addr, error)

// Resolve calls f(ctx).
func (f ResolverFunc) Resolve(ctx context.Context) ([]netip.Addr, error) {
	return f(ctx)
}

// Backend is implemented by DNS hosting providers.
//
// A Backend is bound to exactly one zone and must not cache the zone's records between calls.
// Provider record identifiers never leave the implementation;
// UpdateRecord re-identifies the record it is given.
//
//counterfeiter:generate . Backend
type Backend interface {
	// Zone returns the domain managed by this backend.
	Zone() string

	// ZoneRecords returns every record in the zone, of every type.
	// Names are relative to the zone, with "@" for the apex.
	ZoneRecords(ctx context.Context) ([]ProviderRecord, error)

	// CreateRecord creates record at the provider's default TTL.
	// Unsupported types fail with *UnsupportedRecordTypeError before anything is sent.
	CreateRecord(ctx context.Context, record ProviderRecord) error

	// UpdateRecord replaces the data of existing, which must have just been returned by ZoneRecords.
	// It fails with *RecordVanishedError if existing is no longer present at the provider.
	UpdateRecord(ctx context.Context, existing ProviderRecord, data string) error
}

// DDNSClient is anything that can run a single update pass.
type DDNSClient interface {
	RunDDNS(ctx context.Context) error
}
