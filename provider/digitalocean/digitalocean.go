// Package digitalocean implements ddns.Backend for domains hosted on DigitalOcean.
package digitalocean

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/digitalocean/godo"
	"github.com/go-logr/logr"
	"github.com/samber/lo"
	"golang.org/x/oauth2"

	ddns "github.com/Travis-Britz/dns-agent"
)

const pageSize = 200

// New constructs a Backend for zone, authenticated with a personal access token.
func New(zone, token string, options ...Option) (*Backend, error) {
	if zone == "" {
		return nil, errors.New("digitalocean.New: zone cannot be empty")
	}
	if token == "" {
		return nil, errors.New("digitalocean.New: an API token is required")
	}
	client, err := newClient(token, options)
	if err != nil {
		return nil, fmt.Errorf("digitalocean.New: %w", err)
	}
	return &Backend{zone: zone, client: client}, nil
}

// VerifyToken checks that token is accepted by the API and belongs to an active account.
func VerifyToken(ctx context.Context, token string, options ...Option) error {
	client, err := newClient(token, options)
	if err != nil {
		return fmt.Errorf("digitalocean.VerifyToken: %w", err)
	}
	account, _, err := client.Account.Get(ctx)
	if err != nil {
		return fmt.Errorf("unable to verify api token: %w", err)
	}
	if account.Status != "active" {
		return fmt.Errorf("expected account status to be \"active\"; got \"%s\"", account.Status)
	}
	return nil
}

func newClient(token string, options []Option) (*godo.Client, error) {
	s := &settings{httpClient: http.DefaultClient}
	for i, opt := range options {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("option %d returned an error: %s", i, err)
		}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, s.httpClient)
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))

	clientOpts := []godo.ClientOpt{godo.SetUserAgent("ddns-agent")}
	if s.baseURL != "" {
		clientOpts = append(clientOpts, godo.SetBaseURL(s.baseURL))
	}
	client, err := godo.New(hc, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating digitalocean api client: %w", err)
	}
	return client, nil
}

type settings struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Backend.
type Option func(*settings) error

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(s *settings) error {
		s.baseURL = u
		return nil
	}
}

// WithHTTPClient sets the client that authenticated requests are sent through.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		s.httpClient = hc
		return nil
	}
}

// Backend implements ddns.Backend.
//
// It should be constructed using New.
type Backend struct {
	zone   string
	client *godo.Client
}

// Zone implements ddns.Backend.
func (b *Backend) Zone() string {
	return b.zone
}

// ZoneRecords implements ddns.Backend.
func (b *Backend) ZoneRecords(ctx context.Context) ([]ddns.ProviderRecord, error) {
	records, err := b.list(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(r godo.DomainRecord, _ int) ddns.ProviderRecord {
		return providerRecord(r)
	}), nil
}

// CreateRecord implements ddns.Backend.
// The TTL is left to the provider default.
func (b *Backend) CreateRecord(ctx context.Context, record ddns.ProviderRecord) error {
	if !record.Type.IsAddress() {
		return &ddns.UnsupportedRecordTypeError{Type: record.Type}
	}
	created, _, err := b.client.Domains.CreateRecord(ctx, b.zone, &godo.DomainRecordEditRequest{
		Type: record.Type.String(),
		Name: record.Name,
		Data: record.Data,
	})
	if err != nil {
		return &ddns.TransportError{Op: "create record", Err: err}
	}
	logr.FromContextOrDiscard(ctx).V(2).Info("digitalocean record created", "id", created.ID)
	return nil
}

// UpdateRecord implements ddns.Backend.
//
// The record ID is looked up again by name, type and data,
// so a record that changed since it was listed is reported as vanished.
func (b *Backend) UpdateRecord(ctx context.Context, existing ddns.ProviderRecord, data string) error {
	if !existing.Type.IsAddress() {
		return &ddns.UnsupportedRecordTypeError{Type: existing.Type}
	}
	records, err := b.list(ctx)
	if err != nil {
		return err
	}
	match, found := lo.Find(records, func(r godo.DomainRecord) bool {
		return providerRecord(r) == existing
	})
	if !found {
		return &ddns.RecordVanishedError{Name: existing.Name, Type: existing.Type}
	}

	_, _, err = b.client.Domains.EditRecord(ctx, b.zone, match.ID, &godo.DomainRecordEditRequest{
		Type: existing.Type.String(),
		Name: existing.Name,
		Data: data,
	})
	var errResp *godo.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return &ddns.RecordVanishedError{Name: existing.Name, Type: existing.Type}
	}
	if err != nil {
		return &ddns.TransportError{Op: "update record", Err: err}
	}
	return nil
}

func (b *Backend) list(ctx context.Context) ([]godo.DomainRecord, error) {
	logger := logr.FromContextOrDiscard(ctx)
	var all []godo.DomainRecord
	opt := &godo.ListOptions{PerPage: pageSize}
	for {
		records, resp, err := b.client.Domains.Records(ctx, b.zone, opt)
		if err != nil {
			return nil, &ddns.TransportError{Op: "list records", Err: err}
		}
		all = append(all, records...)
		logger.V(2).Info("digitalocean records page", "page", opt.Page, "count", len(records))
		if resp.Links == nil || resp.Links.IsLastPage() {
			return all, nil
		}
		page, err := resp.Links.CurrentPage()
		if err != nil {
			return nil, &ddns.TransportError{Op: "list records", Err: fmt.Errorf("error reading page links: %w", err)}
		}
		opt.Page = page + 1
	}
}

func providerRecord(r godo.DomainRecord) ddns.ProviderRecord {
	return ddns.ProviderRecord{
		Name: r.Name,
		Type: ddns.ParseRecordType(r.Type),
		Data: r.Data,
	}
}
