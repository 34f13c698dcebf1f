// Package cloudflare implements ddns.Backend for zones hosted on Cloudflare.
package cloudflare

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloudflare/cloudflare-go"
	"github.com/go-logr/logr"
	"github.com/miekg/dns"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	ddns "github.com/Travis-Britz/dns-agent"
)

const (
	// ttl is applied to every record we create.
	ttl = 3600

	defaultComment = "managed by ddns-agent"
)

// zoneIDCache is shared by every Backend in the process.
var zoneIDCache = gocache.New(1*time.Hour, 10*time.Minute)

// New constructs a Backend for zone using a scoped API token.
//
// The token needs Zone:Read and DNS:Edit permissions.
// If no zone ID is given with WithZoneID, it is looked up by name on first use.
func New(zone, token string, options ...Option) (*Backend, error) {
	if zone == "" {
		return nil, errors.New("cloudflare.New: zone cannot be empty")
	}
	cf := &Backend{
		zone:    strings.TrimSuffix(strings.ToLower(zone), "."),
		zoneIDs: zoneIDCache,
		comment: defaultComment,
	}
	for i, opt := range options {
		if err := opt(cf); err != nil {
			return nil, fmt.Errorf("cloudflare.New: option %d returned an error: %s", i, err)
		}
	}

	var err error
	cf.api, err = cloudflare.NewWithAPIToken(token, cf.apiOptions...)
	if err != nil {
		return nil, fmt.Errorf("error creating cloudflare api client: %w", err)
	}
	return cf, nil
}

// VerifyToken checks that token is accepted by the API and active.
// Only the client options WithBaseURL and WithHTTPClient have any effect.
func VerifyToken(ctx context.Context, token string, options ...Option) error {
	cf := &Backend{}
	for i, opt := range options {
		if err := opt(cf); err != nil {
			return fmt.Errorf("cloudflare.VerifyToken: option %d returned an error: %s", i, err)
		}
	}
	api, err := cloudflare.NewWithAPIToken(token, cf.apiOptions...)
	if err != nil {
		return fmt.Errorf("error creating cloudflare api client: %w", err)
	}
	result, err := api.VerifyAPIToken(ctx)
	if err != nil {
		return fmt.Errorf("unable to verify api token: %w", err)
	}
	if result.Status != "active" {
		return fmt.Errorf("expected api token status to be \"active\"; got \"%s\"", result.Status)
	}
	return nil
}

// Option configures a Backend.
type Option func(*Backend) error

// WithZoneID skips the zone ID lookup.
func WithZoneID(id string) Option {
	return func(cf *Backend) error {
		cf.zoneID = id
		return nil
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(cf *Backend) error {
		cf.apiOptions = append(cf.apiOptions, cloudflare.BaseURL(u))
		return nil
	}
}

// WithHTTPClient sets the client API requests are sent through.
func WithHTTPClient(hc *http.Client) Option {
	return func(cf *Backend) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		cf.apiOptions = append(cf.apiOptions, cloudflare.HTTPClient(hc))
		return nil
	}
}

// WithCache replaces the process-wide zone ID cache.
func WithCache(c *gocache.Cache) Option {
	return func(cf *Backend) error {
		cf.zoneIDs = c
		return nil
	}
}

// WithComment sets the comment attached to each new DNS record.
func WithComment(comment string) Option {
	return func(cf *Backend) error {
		cf.comment = comment
		return nil
	}
}

// Backend implements ddns.Backend.
//
// It should be constructed using New.
type Backend struct {
	api        *cloudflare.API
	apiOptions []cloudflare.Option
	zone       string
	zoneID     string
	zoneIDs    *gocache.Cache
	comment    string
}

// Zone implements ddns.Backend.
func (cf *Backend) Zone() string {
	return cf.zone
}

// ZoneRecords implements ddns.Backend.
// Cloudflare reports fully qualified names, which are converted to zone relative names.
func (cf *Backend) ZoneRecords(ctx context.Context) ([]ddns.ProviderRecord, error) {
	_, records, err := cf.list(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(r cloudflare.DNSRecord, _ int) ddns.ProviderRecord {
		return cf.providerRecord(r)
	}), nil
}

// CreateRecord implements ddns.Backend.
func (cf *Backend) CreateRecord(ctx context.Context, record ddns.ProviderRecord) error {
	if !record.Type.IsAddress() {
		return &ddns.UnsupportedRecordTypeError{Type: record.Type}
	}
	zid, err := cf.zoneIdentifier(ctx)
	if err != nil {
		return err
	}
	proxied := false
	created, err := cf.api.CreateDNSRecord(ctx, cloudflare.ZoneIdentifier(zid), cloudflare.CreateDNSRecordParams{
		Type:    record.Type.String(),
		Name:    ddns.AbsoluteName(record.Name, cf.zone),
		Content: record.Data,
		TTL:     ttl,
		Proxied: &proxied,
		Comment: cf.comment,
	})
	if err != nil {
		return &ddns.TransportError{Op: "create record", Err: err}
	}
	logr.FromContextOrDiscard(ctx).V(2).Info("cloudflare record created", "id", created.ID)
	return nil
}

// UpdateRecord implements ddns.Backend.
//
// The record ID is looked up again by name, type and content.
// TTL and proxy status are carried over from the existing record.
func (cf *Backend) UpdateRecord(ctx context.Context, existing ddns.ProviderRecord, data string) error {
	if !existing.Type.IsAddress() {
		return &ddns.UnsupportedRecordTypeError{Type: existing.Type}
	}
	zid, records, err := cf.list(ctx)
	if err != nil {
		return err
	}
	match, found := lo.Find(records, func(r cloudflare.DNSRecord) bool {
		return cf.providerRecord(r) == existing
	})
	if !found {
		return &ddns.RecordVanishedError{Name: existing.Name, Type: existing.Type}
	}

	_, err = cf.api.UpdateDNSRecord(ctx, cloudflare.ZoneIdentifier(zid), cloudflare.UpdateDNSRecordParams{
		ID:      match.ID,
		Type:    match.Type,
		Name:    match.Name,
		Content: data,
		TTL:     match.TTL,
		Proxied: match.Proxied,
	})
	var notFound *cloudflare.NotFoundError
	if errors.As(err, &notFound) {
		return &ddns.RecordVanishedError{Name: existing.Name, Type: existing.Type}
	}
	if err != nil {
		return &ddns.TransportError{Op: "update record", Err: err}
	}
	return nil
}

func (cf *Backend) list(ctx context.Context) (zid string, records []cloudflare.DNSRecord, err error) {
	zid, err = cf.zoneIdentifier(ctx)
	if err != nil {
		return "", nil, err
	}
	records, _, err = cf.api.ListDNSRecords(ctx, cloudflare.ZoneIdentifier(zid), cloudflare.ListDNSRecordsParams{})
	if err != nil {
		return "", nil, &ddns.TransportError{Op: "list records", Err: err}
	}
	logr.FromContextOrDiscard(ctx).V(2).Info("cloudflare records listed", "zoneID", zid, "count", len(records))
	return zid, records, nil
}

func (cf *Backend) providerRecord(r cloudflare.DNSRecord) ddns.ProviderRecord {
	return ddns.ProviderRecord{
		Name: ddns.RelativeName(r.Name, cf.zone),
		Type: ddns.ParseRecordType(r.Type),
		Data: r.Content,
	}
}

// zoneIdentifier returns the configured zone ID,
// or else the ID of the longest zone on the account that contains cf.zone.
func (cf *Backend) zoneIdentifier(ctx context.Context) (string, error) {
	if cf.zoneID != "" {
		return cf.zoneID, nil
	}
	cacheKey := "cloudflare/" + cf.zone
	if cached, ok := cf.zoneIDs.Get(cacheKey); ok {
		return cached.(string), nil
	}

	zones, err := cf.api.ListZones(ctx)
	if err != nil {
		return "", &ddns.TransportError{Op: "list zones", Err: err}
	}
	var zid string
	longest := 0
	for _, z := range zones {
		if dns.IsSubDomain(dns.Fqdn(z.Name), dns.Fqdn(cf.zone)) && len(z.Name) > longest {
			longest, zid = len(z.Name), z.ID
		}
	}
	if longest == 0 {
		return "", fmt.Errorf("unable to find a zone matching %q", cf.zone)
	}
	logr.FromContextOrDiscard(ctx).V(1).Info("got cloudflare zone ID", "zone", cf.zone, "zoneID", zid)
	cf.zoneIDs.SetDefault(cacheKey, zid)
	return zid, nil
}
