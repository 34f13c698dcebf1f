// Package config loads the agent's configuration file and turns it into a ddns.Agent.
//
// The file may be TOML or YAML, chosen by extension.
// ${VAR} references are replaced with environment variables before decoding,
// and credentials may be read from files with owner-only permissions.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the agent looks for its configuration when no path is given.
const DefaultPath = "/etc/dns-agent/config.toml"

// Config is the root of the configuration file.
type Config struct {
	Settings Settings `toml:"settings" yaml:"settings"`
	Domains  []Domain `toml:"domains" yaml:"domains" validate:"required,min=1,dive"`
}

// Settings apply to every domain.
type Settings struct {
	// ExternalIPv4CheckURL is a single service that echoes the caller's public address.
	ExternalIPv4CheckURL string `toml:"external_ipv4_check_url" yaml:"external_ipv4_check_url" validate:"omitempty,http_url"`
	// ExternalIPv4CheckURLs are queried together; two must agree.
	ExternalIPv4CheckURLs []string `toml:"external_ipv4_check_urls" yaml:"external_ipv4_check_urls" validate:"omitempty,dive,http_url"`
	// ExternalIPv4Address fixes the external address instead of discovering it.
	ExternalIPv4Address string `toml:"external_ipv4_address" yaml:"external_ipv4_address" validate:"omitempty,ipv4"`
	// DefaultInterface is used by records without an interface.
	// When empty, the interface holding the default route is used.
	DefaultInterface string `toml:"default_interface" yaml:"default_interface"`

	DryRun   bool          `toml:"dry_run" yaml:"dry_run"`
	Interval time.Duration `toml:"interval" yaml:"interval"`
}

// Domain is one zone and the records the agent keeps in it.
// Exactly one backend must be set.
type Domain struct {
	Name         string               `toml:"name" yaml:"name" validate:"required,zone_name"`
	DigitalOcean *DigitalOceanBackend `toml:"digital_ocean_backend" yaml:"digital_ocean_backend"`
	Cloudflare   *CloudflareBackend   `toml:"cloudflare_backend" yaml:"cloudflare_backend"`
	Route53      *Route53Backend      `toml:"route53_backend" yaml:"route53_backend"`
	Records      []Record             `toml:"records" yaml:"records" validate:"required,min=1,dive"`
}

// DigitalOceanBackend holds DigitalOcean credentials.
type DigitalOceanBackend struct {
	APIKey     string `toml:"api_key" yaml:"api_key" validate:"required_without=APIKeyFile"`
	APIKeyFile string `toml:"api_key_file" yaml:"api_key_file"`
	APIURL     string `toml:"api_url" yaml:"api_url" validate:"omitempty,http_url"`
}

// CloudflareBackend holds Cloudflare credentials and, optionally, the zone ID.
type CloudflareBackend struct {
	APIToken       string `toml:"api_token" yaml:"api_token" validate:"required_without=APITokenFile"`
	APITokenFile   string `toml:"api_token_file" yaml:"api_token_file"`
	ZoneIdentifier string `toml:"zone_identifier" yaml:"zone_identifier"`
	// Zone is the Cloudflare zone name when it differs from the domain name.
	Zone   string `toml:"zone" yaml:"zone" validate:"omitempty,zone_name"`
	APIURL string `toml:"api_url" yaml:"api_url" validate:"omitempty,http_url"`
}

// Route53Backend holds AWS credentials and, optionally, the hosted zone ID.
// Without an access key the SDK's default credential chain is used.
type Route53Backend struct {
	HostedZoneID        string `toml:"hosted_zone_id" yaml:"hosted_zone_id"`
	Region              string `toml:"region" yaml:"region"`
	AccessKeyID         string `toml:"access_key_id" yaml:"access_key_id"`
	SecretAccessKey     string `toml:"secret_access_key" yaml:"secret_access_key"`
	SecretAccessKeyFile string `toml:"secret_access_key_file" yaml:"secret_access_key_file"`
	// Endpoint replaces the AWS API endpoint, e.g. for localstack.
	Endpoint string `toml:"endpoint" yaml:"endpoint" validate:"omitempty,http_url"`
}

// Record is one desired DNS record.
// RecordType is kept as written; types other than A and AAAA are accepted here
// and rejected when the agent runs.
type Record struct {
	Name       string `toml:"name" yaml:"name" validate:"required,record_name"`
	RecordType string `toml:"record_type" yaml:"record_type" validate:"required"`
	Interface  string `toml:"interface" yaml:"interface"`
}

// Load reads, expands, decodes, normalizes and validates the file at path.
// Credentials given as files are read into the matching inline fields.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	content, err := expandEnv(string(raw))
	if err != nil {
		return nil, fmt.Errorf("error expanding %s: %w", path, err)
	}

	cfg := new(Config)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(content, cfg)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader([]byte(content)))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q: use .toml, .yaml or .yml", ext)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.readSecrets(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize lowercases names so they compare equal to what providers return.
func (c *Config) normalize() {
	for i := range c.Domains {
		d := &c.Domains[i]
		d.Name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(d.Name)), ".")
		if d.Cloudflare != nil {
			d.Cloudflare.Zone = strings.TrimSuffix(strings.ToLower(d.Cloudflare.Zone), ".")
		}
		for j := range d.Records {
			r := &d.Records[j]
			r.Name = strings.ToLower(strings.TrimSpace(r.Name))
			r.RecordType = strings.ToUpper(strings.TrimSpace(r.RecordType))
		}
	}
}

// Validate checks c against the field rules and the one-backend-per-domain rule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (c *Config) readSecrets() error {
	var errs []error
	for i := range c.Domains {
		d := &c.Domains[i]
		var err error
		switch {
		case d.DigitalOcean != nil:
			d.DigitalOcean.APIKey, err = readSecret(d.DigitalOcean.APIKey, d.DigitalOcean.APIKeyFile)
		case d.Cloudflare != nil:
			d.Cloudflare.APIToken, err = readSecret(d.Cloudflare.APIToken, d.Cloudflare.APITokenFile)
		case d.Route53 != nil:
			d.Route53.SecretAccessKey, err = readSecret(d.Route53.SecretAccessKey, d.Route53.SecretAccessKeyFile)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("domain %s: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}
