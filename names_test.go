package ddns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ddns "github.com/Travis-Britz/dns-agent"
)

func TestRelativeName(t *testing.T) {
	tests := []struct {
		name, zone, want string
	}{
		{"host.example.com", "example.com", "host"},
		{"host.example.com.", "example.com", "host"},
		{"a.b.example.com", "example.com.", "a.b"},
		{"example.com", "example.com", "@"},
		{"Example.COM.", "example.com", "@"},
		{"host.example.org", "example.com", "host.example.org"},
		{"host", "example.com", "host"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ddns.RelativeName(tt.name, tt.zone), "RelativeName(%q, %q)", tt.name, tt.zone)
	}
}

func TestAbsoluteName(t *testing.T) {
	assert.Equal(t, "host.example.com", ddns.AbsoluteName("host", "example.com"))
	assert.Equal(t, "host.example.com", ddns.AbsoluteName("host", "example.com."))
	assert.Equal(t, "example.com", ddns.AbsoluteName("@", "example.com"))
	assert.Equal(t, "example.com", ddns.AbsoluteName("", "example.com"))
}

func TestIsRecordName(t *testing.T) {
	assert.True(t, ddns.IsRecordName("@"))
	assert.True(t, ddns.IsRecordName("host"))
	assert.True(t, ddns.IsRecordName("a.b"))
	assert.False(t, ddns.IsRecordName("host."))
	assert.False(t, ddns.IsRecordName(""))
	assert.False(t, ddns.IsRecordName("a..b"))
}
