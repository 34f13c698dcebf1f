package ddns

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

// ReconcileOption changes how Reconcile behaves.
type ReconcileOption func(*reconciler)

// DryRun makes Reconcile log the writes it would make instead of making them.
func DryRun() ReconcileOption {
	return func(r *reconciler) { r.dryRun = true }
}

type reconciler struct {
	backend Backend
	logger  logr.Logger
	dryRun  bool
}

// Reconcile drives the records of backend's zone toward desired.
//
// The zone's records are fetched once.
// Every desired record is then resolved against snapshot before anything is written,
// so an unresolvable record aborts the whole call without side effects.
// Records are then created when missing, updated when their data differs from the resolved address,
// and left alone when they already match.
// A desired record with more than one matching provider record is skipped with a warning.
// Records that are not desired are never touched.
//
// The logger is taken from ctx.
func Reconcile(ctx context.Context, backend Backend, desired []DesiredRecord, snapshot *Snapshot, opts ...ReconcileOption) error {
	zone := backend.Zone()
	r := &reconciler{
		backend: backend,
		logger:  logr.FromContextOrDiscard(ctx).WithValues("zone", zone),
	}
	for _, opt := range opts {
		opt(r)
	}

	current, err := backend.ZoneRecords(ctx)
	if err != nil {
		return &ZoneError{Zone: zone, Op: "list records", Err: err}
	}
	r.logger.V(2).Info("fetched zone records", "count", len(current), "records", current)

	resolved := make([]NamedAddress, len(desired))
	for i, want := range desired {
		addr, err := snapshot.Resolve(want)
		if err != nil {
			return &ZoneError{Zone: zone, Op: "resolve", Name: want.Name, Type: want.Type, Err: err}
		}
		resolved[i] = addr
	}

	for i, want := range desired {
		if err := r.apply(ctx, current, want, resolved[i]); err != nil {
			return &ZoneError{Zone: zone, Op: err.op, Name: want.Name, Type: want.Type, Err: err.err}
		}
	}
	return nil
}

type applyError struct {
	op  string
	err error
}

func (r *reconciler) apply(ctx context.Context, current []ProviderRecord, want DesiredRecord, addr NamedAddress) *applyError {
	data := addr.Addr.String()
	logger := r.logger.WithValues("name", want.Name, "type", want.Type.String(), "interface", addr.Interface)

	matches := lo.Filter(current, func(rec ProviderRecord, _ int) bool {
		return rec.Name == want.Name && rec.Type == want.Type
	})

	switch len(matches) {
	case 0:
		if r.dryRun {
			logger.Info("dry run: would create record", "data", data)
			return nil
		}
		record := ProviderRecord{Name: want.Name, Type: want.Type, Data: data}
		if err := r.backend.CreateRecord(ctx, record); err != nil {
			return &applyError{op: "create", err: err}
		}
		logger.V(1).Info("created record", "data", data)
	case 1:
		existing := matches[0]
		if existing.Data == data {
			logger.V(1).Info("record already up to date", "data", data)
			return nil
		}
		if r.dryRun {
			logger.Info("dry run: would update record", "old", existing.Data, "new", data)
			return nil
		}
		if err := r.backend.UpdateRecord(ctx, existing, data); err != nil {
			return &applyError{op: "update", err: err}
		}
		logger.V(1).Info("updated record", "old", existing.Data, "new", data)
	default:
		logger.Info("multiple records found, not updating", "count", len(matches), "records", matches)
	}
	return nil
}
