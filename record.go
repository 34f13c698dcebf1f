package ddns

import (
	"fmt"
	"strings"
)

// RecordType is the type of a DNS record.
//
// Only A and AAAA records can be reconciled;
// the remaining values exist so provider data round-trips without loss of meaning.
type RecordType int

const (
	Other RecordType = iota
	A
	AAAA
	TXT
	NS
	SRV
)

var recordTypeNames = map[RecordType]string{
	Other: "OTHER",
	A:     "A",
	AAAA:  "AAAA",
	TXT:   "TXT",
	NS:    "NS",
	SRV:   "SRV",
}

// ParseRecordType maps s to a RecordType, ignoring case.
// Unknown types map to Other.
func ParseRecordType(s string) RecordType {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range recordTypeNames {
		if t != Other && name == s {
			return t
		}
	}
	return Other
}

func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return recordTypeNames[Other]
}

// IsAddress reports whether records of type t hold an IP address.
func (t RecordType) IsAddress() bool {
	return t == A || t == AAAA
}

// MarshalText implements encoding.TextMarshaler.
func (t RecordType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (t *RecordType) UnmarshalText(text []byte) error {
	*t = ParseRecordType(string(text))
	return nil
}

// DesiredRecord is the target state for one hostname and type.
type DesiredRecord struct {
	// Name is relative to the zone; "@" is the apex.
	Name string
	Type RecordType
	// Interface names the snapshot entry that supplies the address.
	Interface string
}

func (r DesiredRecord) String() string {
	return fmt.Sprintf("%s %s <- %s", r.Type, r.Name, r.Interface)
}

// ProviderRecord is a record as it currently exists at a DNS provider.
type ProviderRecord struct {
	Name string
	Type RecordType
	Data string
}

func (r ProviderRecord) String() string {
	return fmt.Sprintf("%s %s %s", r.Type, r.Name, r.Data)
}
