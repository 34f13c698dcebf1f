package ddns

import (
	"fmt"
	"reflect"
)

// TransportError is returned by backends when the provider could not be reached
// or rejected a request.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// UnsupportedRecordTypeError is returned when an address operation is attempted
// on a record that is not A or AAAA, or when a backend cannot write a type.
type UnsupportedRecordTypeError struct {
	Type RecordType
}

func (e *UnsupportedRecordTypeError) Error() string {
	return fmt.Sprintf("%s is not a supported record type, try \"A\" or \"AAAA\"", e.Type)
}

func (e *UnsupportedRecordTypeError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// InterfaceNotFoundError is returned when a snapshot has no address
// of the required family for an interface.
type InterfaceNotFoundError struct {
	Interface string
	Family    string
}

func (e *InterfaceNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find an %s address for interface %q", e.Family, e.Interface)
}

func (e *InterfaceNotFoundError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// RecordVanishedError is returned by UpdateRecord when the record no longer exists at the provider.
type RecordVanishedError struct {
	Name string
	Type RecordType
}

func (e *RecordVanishedError) Error() string {
	return fmt.Sprintf("tried to update a nonexistent %s record %q", e.Type, e.Name)
}

func (e *RecordVanishedError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// ZoneError carries the zone and record context of a failed reconciliation.
type ZoneError struct {
	Zone string
	Op   string
	// Name and Type are empty when the failure was not specific to a record.
	Name string
	Type RecordType
	Err  error
}

func (e *ZoneError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("zone %s: %s: %s", e.Zone, e.Op, e.Err)
	}
	return fmt.Sprintf("zone %s: %s %s record %q: %s", e.Zone, e.Op, e.Type, e.Name, e.Err)
}

func (e *ZoneError) Unwrap() error {
	return e.Err
}
