package trailclient

import (
	"go.uber.org/zap"

	"github.com/anyproto/any-trail/accountservice"
	"github.com/anyproto/any-trail/app"
	"github.com/anyproto/any-trail/audittrail"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/txwrapper"
)

type client struct {
	readOnly
	executor ledger.Executor
}

func (c *client) Init(a *app.App) (err error) {
	c.init(a)
	c.sender = a.MustComponent(accountservice.CName).(accountservice.Service).Address()
	c.executor = a.MustComponent(ledger.ExecutorCName).(ledger.Executor)
	if c.metric != nil {
		c.executor = c.metric.WrapExecutor(c.executor)
	}
	log.Info("client initialized", zap.String("address", c.sender.String()), zap.String("network", c.program.Network().Name))
	return nil
}

func (c *client) Name() (name string) {
	return CName
}

func (c *client) Address() ledger.Address {
	return c.sender
}

func (c *client) Executor() ledger.Executor {
	return c.executor
}

func (c *client) CreateTrail(params audittrail.CreateParams) *txwrapper.Transaction[*audittrail.Created] {
	return c.program.Create(params)
}

func (c *client) AddRecord(trailID ledger.ObjectID, data audittrail.Data, note *string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RecordAdded] {
	return c.program.AddRecord(c.sender, trailID, data, note, opts...)
}

func (c *client) CorrectRecord(trailID ledger.ObjectID, replaces []uint64, data audittrail.Data, note *string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RecordCorrected] {
	return c.program.CorrectRecord(c.sender, trailID, replaces, data, note, opts...)
}

func (c *client) DeleteRecord(trailID ledger.ObjectID, sequence uint64, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RecordDeleted] {
	return c.program.DeleteRecord(c.sender, trailID, sequence, opts...)
}

func (c *client) CreateRole(trailID ledger.ObjectID, name string, perms []audittrail.Permission, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RoleCreated] {
	return c.program.CreateRole(c.sender, trailID, name, perms, opts...)
}

func (c *client) UpdateRole(trailID ledger.ObjectID, name string, perms []audittrail.Permission, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RoleUpdated] {
	return c.program.UpdateRole(c.sender, trailID, name, perms, opts...)
}

func (c *client) DeleteRole(trailID ledger.ObjectID, name string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.RoleDeleted] {
	return c.program.DeleteRole(c.sender, trailID, name, opts...)
}

func (c *client) IssueCapability(trailID ledger.ObjectID, params audittrail.IssueParams, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.Capability] {
	return c.program.IssueCapability(c.sender, trailID, params, opts...)
}

func (c *client) RevokeCapability(trailID, capabilityID ledger.ObjectID, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.CapabilityRevoked] {
	return c.program.RevokeCapability(c.sender, trailID, capabilityID, opts...)
}

func (c *client) DestroyCapability(trailID, capabilityID ledger.ObjectID) *txwrapper.Transaction[audittrail.CapabilityDestroyed] {
	return c.program.DestroyCapability(c.sender, trailID, capabilityID)
}

func (c *client) UpdateMetadata(trailID ledger.ObjectID, metadata *string, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.MetadataUpdated] {
	return c.program.UpdateMetadata(c.sender, trailID, metadata, opts...)
}

func (c *client) UpdateLocking(trailID ledger.ObjectID, config audittrail.LockingConfig, opts ...audittrail.CallOption) *txwrapper.Transaction[audittrail.LockingConfigUpdated] {
	return c.program.UpdateLocking(c.sender, trailID, config, opts...)
}

func (c *client) Migrate(trailID ledger.ObjectID) *txwrapper.Transaction[struct{}] {
	return c.program.Migrate(c.sender, trailID)
}
