package config

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	r53 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/go-logr/logr"
	"github.com/samber/lo"

	ddns "github.com/Travis-Britz/dns-agent"
	"github.com/Travis-Britz/dns-agent/provider/cloudflare"
	"github.com/Travis-Britz/dns-agent/provider/digitalocean"
	"github.com/Travis-Britz/dns-agent/provider/route53"
)

// Agent builds a ddns.Agent with one zone per configured domain.
// options are applied after the ones derived from c.
func (c *Config) Agent(ctx context.Context, logger logr.Logger, options ...ddns.Option) (*ddns.Agent, error) {
	opts := []ddns.Option{
		ddns.WithLogger(logger),
		ddns.WithDryRun(c.Settings.DryRun),
	}
	external, err := c.Settings.ExternalResolver()
	if err != nil {
		return nil, err
	}
	if external != nil {
		opts = append(opts, ddns.UsingExternalResolver(external))
	}

	defaultInterface, err := c.defaultInterface()
	if err != nil {
		return nil, err
	}
	for _, d := range c.Domains {
		backend, err := d.Backend(ctx)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}
		opts = append(opts, ddns.UsingZone(backend, d.DesiredRecords(defaultInterface)))
	}
	return ddns.New(append(opts, options...)...)
}

// defaultInterface returns the interface for records that name none.
// The default route is only consulted when such a record exists.
func (c *Config) defaultInterface() (string, error) {
	if c.Settings.DefaultInterface != "" {
		return c.Settings.DefaultInterface, nil
	}
	needed := lo.SomeBy(c.Domains, func(d Domain) bool {
		return lo.SomeBy(d.Records, func(r Record) bool { return r.Interface == "" })
	})
	if !needed {
		return "", nil
	}
	iface, err := ddns.DefaultInterface()
	if err != nil {
		return "", fmt.Errorf("a record has no interface and the default interface could not be found: %w", err)
	}
	return iface, nil
}

// ExternalResolver returns the configured source of the external IPv4 address, or nil if there is none.
// A fixed address takes precedence over check URLs.
func (s Settings) ExternalResolver() (ddns.Resolver, error) {
	if s.ExternalIPv4Address != "" {
		return ddns.FromString(s.ExternalIPv4Address)
	}
	urls := s.ExternalIPv4CheckURLs
	if s.ExternalIPv4CheckURL != "" {
		urls = append([]string{s.ExternalIPv4CheckURL}, urls...)
	}
	if len(urls) == 0 {
		return nil, nil
	}
	return ddns.WebResolver(lo.Uniq(urls)...), nil
}

// HasExternalSource reports whether an external address can be resolved.
func (s Settings) HasExternalSource() bool {
	return s.ExternalIPv4Address != "" || s.ExternalIPv4CheckURL != "" || len(s.ExternalIPv4CheckURLs) > 0
}

// DesiredRecords converts d.Records, giving records without an interface defaultInterface.
func (d Domain) DesiredRecords(defaultInterface string) []ddns.DesiredRecord {
	return lo.Map(d.Records, func(r Record, _ int) ddns.DesiredRecord {
		iface := r.Interface
		if iface == "" {
			iface = defaultInterface
		}
		return ddns.DesiredRecord{
			Name:      r.Name,
			Type:      ddns.ParseRecordType(r.RecordType),
			Interface: iface,
		}
	})
}

// Backend constructs the backend configured for d.
func (d Domain) Backend(ctx context.Context) (ddns.Backend, error) {
	switch {
	case d.DigitalOcean != nil:
		var opts []digitalocean.Option
		if d.DigitalOcean.APIURL != "" {
			opts = append(opts, digitalocean.WithBaseURL(d.DigitalOcean.APIURL))
		}
		b, err := digitalocean.New(d.Name, d.DigitalOcean.APIKey, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil

	case d.Cloudflare != nil:
		zone := d.Name
		if d.Cloudflare.Zone != "" {
			zone = d.Cloudflare.Zone
		}
		var opts []cloudflare.Option
		if d.Cloudflare.ZoneIdentifier != "" {
			opts = append(opts, cloudflare.WithZoneID(d.Cloudflare.ZoneIdentifier))
		}
		if d.Cloudflare.APIURL != "" {
			opts = append(opts, cloudflare.WithBaseURL(d.Cloudflare.APIURL))
		}
		b, err := cloudflare.New(zone, d.Cloudflare.APIToken, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil

	case d.Route53 != nil:
		b := d.Route53
		client, err := route53.NewClient(ctx, b.Region, b.AccessKeyID, b.SecretAccessKey, func(o *r53.Options) {
			if b.Endpoint != "" {
				o.BaseEndpoint = awssdk.String(b.Endpoint)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("error creating route53 client: %w", err)
		}
		var opts []route53.Option
		if b.HostedZoneID != "" {
			opts = append(opts, route53.WithHostedZoneID(b.HostedZoneID))
		}
		backend, err := route53.New(d.Name, client, opts...)
		if err != nil {
			return nil, err
		}
		return backend, nil
	}
	return nil, fmt.Errorf("no backend configured for %s", d.Name)
}
