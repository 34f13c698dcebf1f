package config_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ddns "github.com/Travis-Britz/dns-agent"
	"github.com/Travis-Britz/dns-agent/config"
)

func writeFile(t *testing.T, name, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	require.NoError(t, os.Chmod(path, perm))
	return path
}

const tomlConfig = `
[settings]
external_ipv4_check_urls = ["https://ipv4.icanhazip.com/", "https://checkip.amazonaws.com/"]
dry_run = true
interval = "5m"

[[domains]]
name = "Example.COM."
  [domains.digital_ocean_backend]
  api_key = "${DDNS_TEST_DO_TOKEN}"

  [[domains.records]]
  name = "Host"
  record_type = "a"
  interface = "eth0"

  [[domains.records]]
  name = "@"
  record_type = "AAAA"
  interface = "eth0"

[[domains]]
name = "example.net"
  [domains.cloudflare_backend]
  api_token = "cf-token"
  zone_identifier = "abc123"

  [[domains.records]]
  name = "vpn"
  record_type = "A"
  interface = "external"
`

func TestLoadTOML(t *testing.T) {
	t.Setenv("DDNS_TEST_DO_TOKEN", "do-token")
	cfg, err := config.Load(writeFile(t, "config.toml", tomlConfig, 0644))
	require.NoError(t, err)

	assert.True(t, cfg.Settings.DryRun)
	assert.Equal(t, 5*time.Minute, cfg.Settings.Interval)
	assert.Len(t, cfg.Settings.ExternalIPv4CheckURLs, 2)

	require.Len(t, cfg.Domains, 2)
	do := cfg.Domains[0]
	assert.Equal(t, "example.com", do.Name)
	require.NotNil(t, do.DigitalOcean)
	assert.Equal(t, "do-token", do.DigitalOcean.APIKey)
	assert.Equal(t, []config.Record{
		{Name: "host", RecordType: "A", Interface: "eth0"},
		{Name: "@", RecordType: "AAAA", Interface: "eth0"},
	}, do.Records)

	cf := cfg.Domains[1]
	require.NotNil(t, cf.Cloudflare)
	assert.Equal(t, "abc123", cf.Cloudflare.ZoneIdentifier)
	assert.Equal(t, ddns.ExternalInterface, cf.Records[0].Interface)
}

func TestLoadYAML(t *testing.T) {
	keyFile := writeFile(t, "r53.key", "aws-secret\n", 0400)
	cfg, err := config.Load(writeFile(t, "config.yaml", `
settings:
  external_ipv4_address: 203.0.113.10
  default_interface: wlan0
domains:
  - name: example.org
    route53_backend:
      hosted_zone_id: Z123
      region: eu-west-1
      access_key_id: AKIDEXAMPLE
      secret_access_key_file: `+keyFile+`
    records:
      - name: www
        record_type: A
      - name: mail
        record_type: MX
        interface: eth1
`, 0600))
	require.NoError(t, err)

	d := cfg.Domains[0]
	require.NotNil(t, d.Route53)
	assert.Equal(t, "aws-secret", d.Route53.SecretAccessKey)
	assert.Equal(t, []ddns.DesiredRecord{
		{Name: "www", Type: ddns.A, Interface: "wlan0"},
		{Name: "mail", Type: ddns.Other, Interface: "eth1"},
	}, d.DesiredRecords(cfg.Settings.DefaultInterface))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "undefined variable",
			file:    "config.toml",
			content: "[[domains]]\nname = \"example.com\"\n[domains.cloudflare_backend]\napi_token = \"${DDNS_TEST_UNSET}\"\n",
			wantErr: "DDNS_TEST_UNSET",
		},
		{
			name:    "unknown key",
			file:    "config.toml",
			content: "[settings]\nexternal_ip = \"1.2.3.4\"\n",
			wantErr: "external_ip",
		},
		{
			name:    "unknown yaml key",
			file:    "config.yml",
			content: "settings:\n  verbose: true\n",
			wantErr: "verbose",
		},
		{
			name:    "unsupported extension",
			file:    "config.json",
			content: "{}",
			wantErr: "unsupported",
		},
		{
			name:    "malformed toml",
			file:    "config.toml",
			content: "[[domains]\n",
			wantErr: "error parsing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.file, tt.content, 0600))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidation(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Domains: []config.Domain{{
				Name:       "example.com",
				Cloudflare: &config.CloudflareBackend{APIToken: "token"},
				Records:    []config.Record{{Name: "host", RecordType: "A", Interface: "eth0"}},
			}},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no domains", func(c *config.Config) { c.Domains = nil }},
		{"no records", func(c *config.Config) { c.Domains[0].Records = nil }},
		{"no backend", func(c *config.Config) { c.Domains[0].Cloudflare = nil }},
		{"two backends", func(c *config.Config) {
			c.Domains[0].DigitalOcean = &config.DigitalOceanBackend{APIKey: "key"}
		}},
		{"missing token", func(c *config.Config) { c.Domains[0].Cloudflare.APIToken = "" }},
		{"single label domain", func(c *config.Config) { c.Domains[0].Name = "localhost" }},
		{"bad domain", func(c *config.Config) { c.Domains[0].Name = "exa mple..com" }},
		{"empty record name", func(c *config.Config) { c.Domains[0].Records[0].Name = "" }},
		{"bad record name", func(c *config.Config) { c.Domains[0].Records[0].Name = "a..b" }},
		{"absolute record name", func(c *config.Config) { c.Domains[0].Records[0].Name = "host.example.com." }},
		{"missing record type", func(c *config.Config) { c.Domains[0].Records[0].RecordType = "" }},
		{"bad external address", func(c *config.Config) { c.Settings.ExternalIPv4Address = "2001:db8::1" }},
		{"bad check url", func(c *config.Config) { c.Settings.ExternalIPv4CheckURLs = []string{"not a url"} }},
		{"external without source", func(c *config.Config) {
			c.Domains[0].Records[0].Interface = ddns.ExternalInterface
		}},
		{"route53 key without secret", func(c *config.Config) {
			c.Domains[0].Cloudflare = nil
			c.Domains[0].Route53 = &config.Route53Backend{AccessKeyID: "AKID"}
		}},
		{"route53 secret without key", func(c *config.Config) {
			c.Domains[0].Cloudflare = nil
			c.Domains[0].Route53 = &config.Route53Backend{SecretAccessKey: "secret"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestRecordTypesAreNotValidatedEarly(t *testing.T) {
	c := &config.Config{
		Domains: []config.Domain{{
			Name:         "example.com",
			DigitalOcean: &config.DigitalOceanBackend{APIKey: "key"},
			Records:      []config.Record{{Name: "host", RecordType: "TXT", Interface: "eth0"}},
		}},
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, ddns.TXT, c.Domains[0].DesiredRecords("")[0].Type)
}

func TestKeyFilePermissions(t *testing.T) {
	for perm, ok := range map[os.FileMode]bool{0600: true, 0400: true, 0644: false, 0640: false} {
		keyFile := writeFile(t, "token", "secret-token\n", perm)
		cfgFile := writeFile(t, "config.toml", `
[[domains]]
name = "example.com"
  [domains.cloudflare_backend]
  api_token_file = "`+keyFile+`"
  [[domains.records]]
  name = "host"
  record_type = "A"
  interface = "eth0"
`, 0600)

		cfg, err := config.Load(cfgFile)
		if !ok {
			require.Error(t, err, "perm %s", perm)
			assert.Contains(t, err.Error(), "-rw-------")
			continue
		}
		require.NoError(t, err, "perm %s", perm)
		assert.Equal(t, "secret-token", cfg.Domains[0].Cloudflare.APIToken)
	}
}

func TestVerifyPermissionsMissingFile(t *testing.T) {
	assert.Error(t, config.VerifyPermissions(filepath.Join(t.TempDir(), "missing")))
}

func TestExternalResolver(t *testing.T) {
	r, err := config.Settings{}.ExternalResolver()
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = config.Settings{
		ExternalIPv4Address:  "198.51.100.7",
		ExternalIPv4CheckURL: "http://127.0.0.1:1/",
	}.ExternalResolver()
	require.NoError(t, err)
	addrs, err := r.Resolve(context.Background())
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "198.51.100.7", addrs[0].String())

	r, err = config.Settings{ExternalIPv4CheckURL: "https://ipv4.icanhazip.com/"}.ExternalResolver()
	require.NoError(t, err)
	assert.NotNil(t, r)
}

type doServer struct {
	mu      sync.Mutex
	created []map[string]any
}

func (s *doServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/domains/example.com/records", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"domain_records":[],"links":{},"meta":{"total":0}}`)
	})
	mux.HandleFunc("POST /v2/domains/example.com/records", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.created = append(s.created, body)
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"domain_record":{"id":1}}`)
	})
	return mux
}

func TestAgent(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		t.Run(fmt.Sprintf("dry_run=%v", dryRun), func(t *testing.T) {
			fake := &doServer{}
			srv := httptest.NewServer(fake.handler())
			defer srv.Close()

			cfg := &config.Config{
				Settings: config.Settings{ExternalIPv4Address: "203.0.113.9", DryRun: dryRun},
				Domains: []config.Domain{{
					Name:         "example.com",
					DigitalOcean: &config.DigitalOceanBackend{APIKey: "token", APIURL: srv.URL + "/"},
					Records: []config.Record{
						{Name: "host", RecordType: "A", Interface: "eth0"},
						{Name: "@", RecordType: "A", Interface: ddns.ExternalInterface},
					},
				}},
			}
			require.NoError(t, cfg.Validate())

			agent, err := cfg.Agent(context.Background(), logr.Discard(), ddns.UsingInterfaceSource(func() ([]ddns.NamedAddress, error) {
				return []ddns.NamedAddress{{Interface: "eth0", Addr: netip.MustParseAddr("192.168.1.20")}}, nil
			}))
			require.NoError(t, err)
			require.NoError(t, agent.RunDDNS(context.Background()))

			fake.mu.Lock()
			defer fake.mu.Unlock()
			if dryRun {
				assert.Empty(t, fake.created)
				return
			}
			require.Len(t, fake.created, 2)
			assert.Equal(t, "host", fake.created[0]["name"])
			assert.Equal(t, "192.168.1.20", fake.created[0]["data"])
			assert.Equal(t, "@", fake.created[1]["name"])
			assert.Equal(t, "203.0.113.9", fake.created[1]["data"])
		})
	}
}

func TestAgentBackendError(t *testing.T) {
	cfg := &config.Config{
		Domains: []config.Domain{{Name: "example.com", Records: []config.Record{{Name: "host", RecordType: "A", Interface: "eth0"}}}},
	}
	_, err := cfg.Agent(context.Background(), logr.Discard())
	assert.ErrorContains(t, err, "no backend configured")
}
