package audittrail

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/callcomposer"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/objectref"
	"github.com/anyproto/any-trail/ledger/txwrapper"
)

type CreateParams struct {
	// InitialRecord is stored with sequence 0 when set
	InitialRecord     *Data
	InitialNote       *string
	AdminRole         string
	Locking           LockingConfig
	Metadata          *Metadata
	UpdatableMetadata *string
}

type Created struct {
	Event           AuditTrailCreated
	AdminCapability Capability
}

// Create makes a new trail; the sender receives a capability for the admin role.
func (p *Program) Create(params CreateParams) *txwrapper.Transaction[*Created] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if params.AdminRole == "" {
			return nil, fmt.Errorf("%w: admin role name is empty", ledgererr.ErrInvalidArgument)
		}
		if params.InitialRecord != nil {
			if err := params.InitialRecord.validate(); err != nil {
				return nil, fmt.Errorf("%w: %w", ledgererr.ErrInvalidArgument, err)
			}
		}
		dataType, err := p.DataType()
		if err != nil {
			return nil, err
		}
		composer, err := p.composer(reader)
		if err != nil {
			return nil, err
		}
		call := callcomposer.Call{
			Module:    ModuleTrail,
			Function:  FuncCreate,
			TypeArgs:  []ledger.TypeTag{dataType},
			WithClock: true,
		}
		return composer.Plain(ctx, call, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(
				callarg.Option[Data]{Value: params.InitialRecord},
				callarg.Option[string]{Value: params.InitialNote},
				params.AdminRole,
				params.Locking,
				callarg.Option[Metadata]{Value: params.Metadata},
				callarg.Option[string]{Value: params.UpdatableMetadata},
			)
		})
	}
	apply := func(ctx context.Context, res *ledger.ExecutionResult, reader ledger.Reader) (*Created, error) {
		ev, err := txwrapper.FindEvent[AuditTrailCreated](res.Events, "AuditTrailCreated")
		if err != nil {
			return nil, err
		}
		_, admin, err := txwrapper.FindCreated(ctx, reader, res.Effects, func(id ledger.ObjectID, c Capability) bool {
			return c.TrailID == ev.TrailID && c.Role == params.AdminRole
		})
		if err != nil {
			return nil, fmt.Errorf("admin capability of %s: %w", ev.TrailID, err)
		}
		log.Info("trail created", zap.String("trailId", ev.TrailID.String()), zap.String("adminCapability", admin.ID.String()))
		return &Created{Event: ev, AdminCapability: admin}, nil
	}
	return txwrapper.New(FuncCreate, build, apply)
}

// Get fetches and decodes the current state of the trail.
func (p *Program) Get(ctx context.Context, reader ledger.Reader, trailID ledger.ObjectID) (*Trail, error) {
	var trail Trail
	if _, err := objectref.New(reader).Load(ctx, trailID, &trail); err != nil {
		return nil, fmt.Errorf("trail %s: %w", trailID, err)
	}
	return &trail, nil
}

func (p *Program) UpdateMetadata(sender ledger.Address, trailID ledger.ObjectID, metadata *string, opts ...CallOption) *txwrapper.Transaction[MetadataUpdated] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		return p.authenticated(ctx, reader, sender, trailID, FuncUpdateMetadata, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(callarg.Option[string]{Value: metadata})
		})
	}
	return txwrapper.New(opName(FuncUpdateMetadata, trailID), build, eventResult[MetadataUpdated]("MetadataUpdated"))
}

func (p *Program) UpdateLocking(sender ledger.Address, trailID ledger.ObjectID, config LockingConfig, opts ...CallOption) *txwrapper.Transaction[LockingConfigUpdated] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		return p.authenticated(ctx, reader, sender, trailID, FuncUpdateLockingConfig, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(config)
		})
	}
	return txwrapper.New(opName(FuncUpdateLockingConfig, trailID), build, eventResult[LockingConfigUpdated]("LockingConfigUpdated"))
}

// Migrate moves the trail to the current package version.
func (p *Program) Migrate(sender ledger.Address, trailID ledger.ObjectID) *txwrapper.Transaction[struct{}] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		return nil, fmt.Errorf("%w: %s", ledgererr.ErrNotImplemented, FuncMigrate)
	}
	apply := func(ctx context.Context, res *ledger.ExecutionResult, reader ledger.Reader) (struct{}, error) {
		return struct{}{}, fmt.Errorf("%w: %s", ledgererr.ErrNotImplemented, FuncMigrate)
	}
	return txwrapper.New(opName(FuncMigrate, trailID), build, apply)
}

func eventResult[E any](kind string) txwrapper.ApplyFunc[E] {
	return func(ctx context.Context, res *ledger.ExecutionResult, reader ledger.Reader) (E, error) {
		return txwrapper.FindEvent[E](res.Events, kind)
	}
}
