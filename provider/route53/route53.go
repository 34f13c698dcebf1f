// Package route53 implements ddns.Backend for public hosted zones on Amazon Route 53.
package route53

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	r53 "github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	ddns "github.com/Travis-Britz/dns-agent"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	// ttl is applied to every record set we create.
	ttl = 300

	defaultRegion = "us-east-1"
)

var hostedZoneIDCache = gocache.New(1*time.Hour, 10*time.Minute)

// API is the subset of the Route 53 client used by Backend.
//
//counterfeiter:generate . API
type API interface {
	ListResourceRecordSets(ctx context.Context, params *r53.ListResourceRecordSetsInput, optFns ...func(*r53.Options)) (*r53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *r53.ChangeResourceRecordSetsInput, optFns ...func(*r53.Options)) (*r53.ChangeResourceRecordSetsOutput, error)
	ListHostedZonesByName(ctx context.Context, params *r53.ListHostedZonesByNameInput, optFns ...func(*r53.Options)) (*r53.ListHostedZonesByNameOutput, error)
}

// HostedZoneNotFoundError is returned when no hosted zone has the backend's zone name.
type HostedZoneNotFoundError struct {
	Zone string
}

func (e *HostedZoneNotFoundError) Error() string {
	return fmt.Sprintf("hosted zone %q was not found", e.Zone)
}

func (e *HostedZoneNotFoundError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// NewClient builds a Route 53 client.
// Static credentials are used when accessKeyID is set;
// otherwise the SDK's default credential chain applies.
func NewClient(ctx context.Context, region, accessKeyID, secretAccessKey string, optFns ...func(*r53.Options)) (*r53.Client, error) {
	if region == "" {
		region = defaultRegion
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return r53.NewFromConfig(cfg, optFns...), nil
}

// New constructs a Backend for zone.
func New(zone string, api API, options ...Option) (*Backend, error) {
	if zone == "" {
		return nil, errors.New("route53.New: zone cannot be empty")
	}
	if api == nil {
		return nil, errors.New("route53.New: api cannot be nil")
	}
	b := &Backend{
		api:     api,
		zone:    strings.TrimSuffix(strings.ToLower(zone), "."),
		zoneIDs: hostedZoneIDCache,
	}
	for _, opt := range options {
		opt(b)
	}
	return b, nil
}

// Option configures a Backend.
type Option func(*Backend)

// WithHostedZoneID skips the hosted zone lookup.
func WithHostedZoneID(id string) Option {
	return func(b *Backend) {
		b.hostedZoneID = strings.TrimPrefix(id, "/hostedzone/")
	}
}

// WithCache replaces the process-wide hosted zone ID cache.
func WithCache(c *gocache.Cache) Option {
	return func(b *Backend) {
		b.zoneIDs = c
	}
}

// Backend implements ddns.Backend.
//
// Route 53 groups values into record sets keyed by name and type.
// Every value is reported as its own ddns.ProviderRecord,
// so a set with several values is ambiguous to the reconciler and is left alone.
// Alias and weighted/latency/failover sets are not reported.
type Backend struct {
	api          API
	zone         string
	hostedZoneID string
	zoneIDs      *gocache.Cache
}

// Zone implements ddns.Backend.
func (b *Backend) Zone() string {
	return b.zone
}

// ZoneRecords implements ddns.Backend.
func (b *Backend) ZoneRecords(ctx context.Context) ([]ddns.ProviderRecord, error) {
	zid, err := b.zoneID(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := b.list(ctx, zid)
	if err != nil {
		return nil, err
	}
	return lo.FlatMap(sets, func(set r53types.ResourceRecordSet, _ int) []ddns.ProviderRecord {
		return b.providerRecords(set)
	}), nil
}

// CreateRecord implements ddns.Backend.
func (b *Backend) CreateRecord(ctx context.Context, record ddns.ProviderRecord) error {
	if !record.Type.IsAddress() {
		return &ddns.UnsupportedRecordTypeError{Type: record.Type}
	}
	zid, err := b.zoneID(ctx)
	if err != nil {
		return err
	}
	set := r53types.ResourceRecordSet{
		Name:            awssdk.String(ddns.AbsoluteName(record.Name, b.zone) + "."),
		Type:            r53types.RRType(record.Type.String()),
		TTL:             awssdk.Int64(ttl),
		ResourceRecords: []r53types.ResourceRecord{{Value: awssdk.String(record.Data)}},
	}
	return b.change(ctx, zid, "create record", r53types.Change{Action: r53types.ChangeActionCreate, ResourceRecordSet: &set})
}

// UpdateRecord implements ddns.Backend.
//
// The record set holding existing is read again and replaced in one atomic batch,
// deleting the old set and creating it again with the new value.
// If the set changed in the meantime Route 53 rejects the batch and the record is reported as vanished.
func (b *Backend) UpdateRecord(ctx context.Context, existing ddns.ProviderRecord, data string) error {
	if !existing.Type.IsAddress() {
		return &ddns.UnsupportedRecordTypeError{Type: existing.Type}
	}
	zid, err := b.zoneID(ctx)
	if err != nil {
		return err
	}
	sets, err := b.list(ctx, zid)
	if err != nil {
		return err
	}
	old, found := lo.Find(sets, func(set r53types.ResourceRecordSet) bool {
		return slices.Contains(b.providerRecords(set), existing)
	})
	if !found {
		return &ddns.RecordVanishedError{Name: existing.Name, Type: existing.Type}
	}

	replacement := old
	replacement.ResourceRecords = lo.Map(old.ResourceRecords, func(rr r53types.ResourceRecord, _ int) r53types.ResourceRecord {
		if awssdk.ToString(rr.Value) == existing.Data {
			return r53types.ResourceRecord{Value: awssdk.String(data)}
		}
		return rr
	})
	err = b.change(ctx, zid, "update record",
		r53types.Change{Action: r53types.ChangeActionDelete, ResourceRecordSet: &old},
		r53types.Change{Action: r53types.ChangeActionCreate, ResourceRecordSet: &replacement},
	)
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "InvalidChangeBatch" {
		return &ddns.RecordVanishedError{Name: existing.Name, Type: existing.Type}
	}
	return err
}

func (b *Backend) change(ctx context.Context, zid, op string, changes ...r53types.Change) error {
	out, err := b.api.ChangeResourceRecordSets(ctx, &r53.ChangeResourceRecordSetsInput{
		HostedZoneId: awssdk.String(zid),
		ChangeBatch: &r53types.ChangeBatch{
			Comment: awssdk.String("ddns-agent " + op),
			Changes: changes,
		},
	})
	if err != nil {
		return errors.WithStack(&ddns.TransportError{Op: op, Err: err})
	}
	if out != nil && out.ChangeInfo != nil {
		logr.FromContextOrDiscard(ctx).V(2).Info("route53 change submitted", "change", awssdk.ToString(out.ChangeInfo.Id), "status", out.ChangeInfo.Status)
	}
	return nil
}

func (b *Backend) list(ctx context.Context, zid string) ([]r53types.ResourceRecordSet, error) {
	var sets []r53types.ResourceRecordSet
	input := &r53.ListResourceRecordSetsInput{HostedZoneId: awssdk.String(zid)}
	for {
		out, err := b.api.ListResourceRecordSets(ctx, input)
		if err != nil {
			return nil, errors.WithStack(&ddns.TransportError{Op: "list records", Err: err})
		}
		sets = append(sets, out.ResourceRecordSets...)
		if !out.IsTruncated {
			return sets, nil
		}
		input.StartRecordName = out.NextRecordName
		input.StartRecordType = out.NextRecordType
		input.StartRecordIdentifier = out.NextRecordIdentifier
	}
}

// providerRecords returns one record per value of set.
func (b *Backend) providerRecords(set r53types.ResourceRecordSet) []ddns.ProviderRecord {
	if set.AliasTarget != nil || set.SetIdentifier != nil {
		return nil
	}
	name := ddns.RelativeName(unescape(awssdk.ToString(set.Name)), b.zone)
	rtype := ddns.ParseRecordType(string(set.Type))
	return lo.Map(set.ResourceRecords, func(rr r53types.ResourceRecord, _ int) ddns.ProviderRecord {
		return ddns.ProviderRecord{Name: name, Type: rtype, Data: awssdk.ToString(rr.Value)}
	})
}

// unescape undoes the octal escaping Route 53 applies to names, such as \052 for a wildcard.
func unescape(name string) string {
	if !strings.Contains(name, `\`) {
		return name
	}
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' && i+3 < len(name) {
			if c, err := strconv.ParseUint(name[i+1:i+4], 8, 8); err == nil {
				sb.WriteByte(byte(c))
				i += 3
				continue
			}
		}
		sb.WriteByte(name[i])
	}
	return sb.String()
}

// zoneID returns the configured hosted zone ID or looks it up by name.
func (b *Backend) zoneID(ctx context.Context) (string, error) {
	if b.hostedZoneID != "" {
		return b.hostedZoneID, nil
	}
	cacheKey := "route53/" + b.zone
	if cached, ok := b.zoneIDs.Get(cacheKey); ok {
		return cached.(string), nil
	}

	out, err := b.api.ListHostedZonesByName(ctx, &r53.ListHostedZonesByNameInput{
		DNSName:  awssdk.String(b.zone),
		MaxItems: awssdk.Int32(1),
	})
	if err != nil {
		return "", errors.WithStack(&ddns.TransportError{Op: "list hosted zones", Err: err})
	}
	if len(out.HostedZones) < 1 || awssdk.ToString(out.HostedZones[0].Name) != b.zone+"." {
		return "", &HostedZoneNotFoundError{Zone: b.zone}
	}
	zid := strings.TrimPrefix(awssdk.ToString(out.HostedZones[0].Id), "/hostedzone/")
	logr.FromContextOrDiscard(ctx).V(1).Info("got route53 hosted zone ID", "zone", b.zone, "hostedZoneID", zid)
	b.zoneIDs.SetDefault(cacheKey, zid)
	return zid, nil
}
