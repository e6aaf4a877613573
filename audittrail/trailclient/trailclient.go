package trailclient

import (
	"context"

	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/audittrail"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/linkedtable"
	"github.com/anyproto/any-trail/ledger/txwrapper"
	"github.com/anyproto/any-trail/metric"
)

const (
	CName         = "audittrail.client"
	ReadOnlyCName = "audittrail.readonly"
)

var log = logger.NewNamed(CName)

type configGetter interface {
	GetNetwork() ledger.Network
}

// ReadOnly queries trails without a signer.
type ReadOnly interface {
	Get(ctx context.Context, trailID ledger.ObjectID) (*audittrail.Trail, error)
	RecordCount(ctx context.Context, trailID ledger.ObjectID) (uint64, error)
	GetRecord(ctx context.Context, trailID ledger.ObjectID, sequence uint64) (audittrail.Record, error)
	IsRecordLocked(ctx context.Context, trailID ledger.ObjectID, sequence uint64) (bool, error)
	ListRecords(ctx context.Context, trailID ledger.ObjectID) (map[uint64]audittrail.Record, error)
	ListRecordsBounded(ctx context.Context, trailID ledger.ObjectID, max uint64) (map[uint64]audittrail.Record, error)
	ListRecordsPage(ctx context.Context, trailID ledger.ObjectID, cursor *uint64, limit int) (*linkedtable.Page[audittrail.Record], error)
	Roles(ctx context.Context, trailID ledger.ObjectID) (map[string][]audittrail.Permission, error)
	Capabilities(ctx context.Context, owner ledger.Address) (map[ledger.ObjectID]audittrail.Capability, error)
	Reader() ledger.Reader
}

// Client is a ReadOnly bound to a signer; it builds the transactions the signer may execute.
type Client interface {
	ReadOnly
	Address() ledger.Address
	Executor() ledger.Executor

	CreateTrail(params audittrail.CreateParams) *txwrapper.Transaction[*audittrail.Created]
	AddRecord(trailID ledger.ObjectID, data audittrail.Data, note *string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RecordAdded]
	CorrectRecord(trailID ledger.ObjectID, replaces []uint64, data audittrail.Data, note *string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RecordCorrected]
	DeleteRecord(trailID ledger.ObjectID, sequence uint64, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RecordDeleted]
	CreateRole(trailID ledger.ObjectID, name string, perms []audittrail.Permission, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RoleCreated]
	UpdateRole(trailID ledger.ObjectID, name string, perms []audittrail.Permission, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RoleUpdated]
	DeleteRole(trailID ledger.ObjectID, name string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RoleDeleted]
	IssueCapability(trailID ledger.ObjectID, params audittrail.IssueParams, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.Capability]
	RevokeCapability(trailID, capabilityID ledger.ObjectID, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.CapabilityRevoked]
	DestroyCapability(trailID, capabilityID ledger.ObjectID) *txwrapper.Transaction[audittrail.CapabilityDestroyed]
	UpdateMetadata(trailID ledger.ObjectID, metadata *string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.MetadataUpdated]
	UpdateLocking(trailID ledger.ObjectID, config audittrail.LockingConfig, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.LockingConfigUpdated]
	Migrate(trailID ledger.ObjectID) *txwrapper.Transaction[struct{}]
}

// Execute runs the transaction with the client's executor.
func Execute[T any](ctx context.Context, c Client, tx *txwrapper.Transaction[T]) (T, error) {
	return txwrapper.Execute(ctx, tx, c.Executor(), c.Reader())
}

type ReadOnlyComponent interface {
	app.Component
	ReadOnly
}

type ClientComponent interface {
	app.Component
	Client
}

func NewReadOnly() ReadOnlyComponent {
	return &readOnly{}
}

func New() ClientComponent {
	return &client{}
}

// NewReadOnlyWith returns a ReadOnly working without the app.
func NewReadOnlyWith(reader ledger.Reader, network ledger.Network) ReadOnly {
	return &readOnly{reader: reader, program: audittrail.NewProgram(network)}
}

// NewWith returns a Client working without the app.
func NewWith(reader ledger.Reader, executor ledger.Executor, signer ledger.Signer, network ledger.Network) Client {
	return &client{
		readOnly: readOnly{reader: reader, program: audittrail.NewProgram(network), sender: signer.Address()},
		executor: executor,
	}
}

func (r *readOnly) init(a *app.App) {
	r.reader = a.MustComponent(ledger.ReaderCName).(ledger.Reader)
	r.program = audittrail.NewProgram(a.MustComponent("config").(configGetter).GetNetwork())
	if m, ok := a.Component(metric.CName).(metric.Metric); ok {
		r.metric = m
		r.reader = m.WrapReader(r.reader)
	}
}
