package ddns

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Zone pairs a backend with the records it should hold.
type Zone struct {
	Backend Backend
	Records []DesiredRecord
}

// New constructs an Agent.
//
// At least one zone must be registered with UsingZone.
// By default the snapshot contains the local interface addresses only;
// use UsingExternalResolver to add an "external" IPv4 entry.
func New(options ...Option) (*Agent, error) {
	a := &Agent{
		interfaces: LocalAddresses,
		logger:     logr.Discard(),
	}
	for i, opt := range options {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("ddns.New: option %d returned an error: %s", i, err)
		}
	}
	if len(a.zones) == 0 {
		return nil, errors.New("ddns.New: no zones were registered - use ddns.UsingZone")
	}
	return a, nil
}

// Option configures an Agent.
type Option func(*Agent) error

// UsingZone registers a backend and the records it should hold.
// Zones are reconciled in registration order.
func UsingZone(backend Backend, records []DesiredRecord) Option {
	return func(a *Agent) error {
		if backend == nil {
			return errors.New("backend cannot be nil")
		}
		a.zones = append(a.zones, Zone{Backend: backend, Records: records})
		return nil
	}
}

// UsingExternalResolver adds the IPv4 address reported by resolver to every snapshot
// under the ExternalInterface name.
func UsingExternalResolver(resolver Resolver) Option {
	return func(a *Agent) error {
		a.external = resolver
		return nil
	}
}

// UsingInterfaceSource replaces LocalAddresses as the source of local interface addresses.
func UsingInterfaceSource(source func() ([]NamedAddress, error)) Option {
	return func(a *Agent) error {
		if source == nil {
			source = LocalAddresses
		}
		a.interfaces = source
		return nil
	}
}

// UsingHTTPClient sets the client used by the external resolver, if it accepts one.
// It must come after UsingExternalResolver.
func UsingHTTPClient(httpclient *http.Client) Option {
	return func(a *Agent) error {
		type setHTTPClient interface {
			SetHTTPClient(*http.Client)
		}
		if r, ok := a.external.(setHTTPClient); ok {
			r.SetHTTPClient(httpclient)
		}
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(a *Agent) error {
		a.logger = logger
		return nil
	}
}

// WithDryRun makes every reconciliation log its writes instead of making them.
func WithDryRun(dryRun bool) Option {
	return func(a *Agent) error {
		a.dryRun = dryRun
		return nil
	}
}

// Agent keeps a set of zones pointed at the host's current addresses.
type Agent struct {
	zones      []Zone
	external   Resolver
	interfaces func() ([]NamedAddress, error)
	logger     logr.Logger
	dryRun     bool
}

// Snapshot captures the current local addresses and, if configured, the external IPv4 address.
func (a *Agent) Snapshot(ctx context.Context) (*Snapshot, error) {
	local, err := a.interfaces()
	if err != nil {
		return nil, fmt.Errorf("error getting local addresses: %w", err)
	}
	var external netip.Addr
	if a.external != nil {
		if external, err = ExternalIPv4(ctx, a.external); err != nil {
			return nil, err
		}
	}
	return NewSnapshot(local, external)
}

// RunDDNS takes one snapshot and reconciles every zone against it, one at a time.
//
// A failing zone does not stop the zones after it;
// the returned error joins the failures of every zone.
// Failing to build the snapshot stops the run before any zone is touched.
func (a *Agent) RunDDNS(ctx context.Context) error {
	logger := a.logger.WithValues("run", uuid.NewString())
	snapshot, err := a.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("error building address snapshot: %w", err)
	}
	logger.V(1).Info("system addresses", "v4", snapshot.V4, "v6", snapshot.V6)

	ctx = logr.NewContext(ctx, logger)
	var opts []ReconcileOption
	if a.dryRun {
		opts = append(opts, DryRun())
	}

	var errs []error
	for _, z := range a.zones {
		logger.V(1).Info("starting update", "zone", z.Backend.Zone(), "records", len(z.Records))
		if err := Reconcile(ctx, z.Backend, z.Records, snapshot, opts...); err != nil {
			logger.Error(err, "zone update failed", "zone", z.Backend.Zone())
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RunDaemon runs ddnsClient immediately and then every interval,
// and also whenever a value arrives on wake, until ctx is done.
//
// Runs never overlap. Errors are logged and do not stop the loop.
// Intervals below one minute are raised to one minute.
func RunDaemon(ctx context.Context, ddnsClient DDNSClient, interval time.Duration, logger logr.Logger, wake <-chan struct{}) {
	if interval < 1*time.Minute {
		interval = 1 * time.Minute
	}
	run := func(reason string) {
		logger.V(1).Info("running update", "reason", reason)
		if err := ddnsClient.RunDDNS(ctx); err != nil {
			logger.Error(err, "ddns.RunDaemon")
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run("startup")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run("interval")
		case <-wake:
			run("wake")
		}
	}
}
