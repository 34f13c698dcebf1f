package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/miekg/dns"

	ddns "github.com/Travis-Britz/dns-agent"
)

// validate is a package-level singleton; it caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their file key rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("zone_name", isZoneName)
	v.RegisterValidation("record_name", func(fl validator.FieldLevel) bool {
		return ddns.IsRecordName(fl.Field().String())
	})
	v.RegisterStructValidation(configStructLevel, Config{})
	v.RegisterStructValidation(domainStructLevel, Domain{})
	v.RegisterStructValidation(route53StructLevel, Route53Backend{})
	return v
}

// isZoneName accepts names like "example.com", with at least one dot and no trailing dot.
func isZoneName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || strings.HasSuffix(name, ".") || !strings.Contains(name, ".") {
		return false
	}
	_, ok := dns.IsDomainName(name)
	return ok
}

// configStructLevel rejects records on the external interface when no external source is configured.
func configStructLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.Settings.HasExternalSource() {
		return
	}
	for _, d := range c.Domains {
		for _, r := range d.Records {
			if r.Interface == ddns.ExternalInterface {
				sl.ReportError(r.Interface, "interface", "Interface", "external_source", d.Name+"/"+r.Name)
				return
			}
		}
	}
}

func domainStructLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(Domain)
	backends := 0
	for _, set := range []bool{d.DigitalOcean != nil, d.Cloudflare != nil, d.Route53 != nil} {
		if set {
			backends++
		}
	}
	if backends != 1 {
		sl.ReportError(backends, "backend", "Backend", "one_backend", "")
	}
}

func route53StructLevel(sl validator.StructLevel) {
	b := sl.Current().Interface().(Route53Backend)
	if b.AccessKeyID != "" && b.SecretAccessKey == "" && b.SecretAccessKeyFile == "" {
		sl.ReportError(b.SecretAccessKey, "secret_access_key", "SecretAccessKey", "required_with_access_key", "")
	}
	if b.AccessKeyID == "" && (b.SecretAccessKey != "" || b.SecretAccessKeyFile != "") {
		sl.ReportError(b.AccessKeyID, "access_key_id", "AccessKeyID", "required_with_secret", "")
	}
}
