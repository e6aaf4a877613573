// Package audittrail composes the operations of the audit trail ledger program.
package audittrail

import (
	"context"
	"fmt"

	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/capability"
	"github.com/anyproto/any-trail/ledger/callcomposer"
)

const (
	ModuleTrail      = "audit_trail"
	ModuleCapability = "capability"
	ModuleRecord     = "record"
)

// Entry points of the program.
const (
	FuncCreate              = "create"
	FuncAddRecord           = "add_record"
	FuncCorrectRecord       = "correct_record"
	FuncDeleteRecord        = "delete_record"
	FuncCreateRole          = "create_role"
	FuncUpdateRole          = "update_role_permissions"
	FuncDeleteRole          = "delete_role"
	FuncNewCapability       = "new_capability"
	FuncRevokeCapability    = "revoke_capability"
	FuncDestroyCapability   = "destroy_capability"
	FuncUpdateMetadata      = "update_metadata"
	FuncUpdateLockingConfig = "update_locking_config"
	FuncMigrate             = "migrate"
	FuncRecordCount         = "record_count"
	FuncGetRecord           = "get_record"
	FuncIsRecordLocked      = "is_record_locked"
)

var log = logger.NewNamed("audittrail")

func NewProgram(network ledger.Network) *Program {
	return &Program{network: network}
}

// Program builds transactions and queries against one deployment of the program.
type Program struct {
	network ledger.Network
}

func (p *Program) Network() ledger.Network {
	return p.network
}

func (p *Program) typeTag(module, name string, params ...ledger.TypeTag) (ledger.TypeTag, error) {
	pkg, err := p.network.Package()
	if err != nil {
		return ledger.TypeTag{}, err
	}
	return ledger.StructTag(pkg.Address(), module, name, params...), nil
}

// DataType is the record payload type the trails are instantiated with.
func (p *Program) DataType() (ledger.TypeTag, error) {
	return p.typeTag(ModuleRecord, "Data")
}

func (p *Program) TrailType() (ledger.TypeTag, error) {
	data, err := p.DataType()
	if err != nil {
		return ledger.TypeTag{}, err
	}
	return p.typeTag(ModuleTrail, "AuditTrail", data)
}

func (p *Program) CapabilityType() (ledger.TypeTag, error) {
	return p.typeTag(ModuleCapability, "Capability")
}

func (p *Program) composer(reader ledger.Reader) (*callcomposer.Composer, error) {
	capType, err := p.CapabilityType()
	if err != nil {
		return nil, err
	}
	return callcomposer.New(reader, p.network, capability.New[Capability](reader, capType)), nil
}

// CallOption adjusts an authenticated call.
type CallOption func(c *callcomposer.Call)

// WithCapability uses the given capability instead of looking it up among the sender's objects.
func WithCapability(id ledger.ObjectID) CallOption {
	return func(c *callcomposer.Call) {
		c.CapabilityID = &id
	}
}

func (p *Program) authenticated(ctx context.Context, reader ledger.Reader, sender ledger.Address, trailID ledger.ObjectID, function string, opts []CallOption, extend callcomposer.ExtendFunc) (*ledger.CallPayload, error) {
	composer, err := p.composer(reader)
	if err != nil {
		return nil, err
	}
	call := callcomposer.Call{
		Module:         ModuleTrail,
		Function:       function,
		Target:         trailID,
		TargetTypeArgs: true,
		WithClock:      true,
	}
	for _, opt := range opts {
		opt(&call)
	}
	return composer.Authenticated(ctx, sender, call, extend)
}

func (p *Program) readOnly(ctx context.Context, reader ledger.Reader, trailID ledger.ObjectID, function string, withClock bool, extend callcomposer.ExtendFunc) (*ledger.CallPayload, error) {
	composer, err := p.composer(reader)
	if err != nil {
		return nil, err
	}
	return composer.ReadOnly(ctx, callcomposer.Call{
		Module:         ModuleTrail,
		Function:       function,
		Target:         trailID,
		TargetTypeArgs: true,
		WithClock:      withClock,
	}, extend)
}

func opName(function string, trailID ledger.ObjectID) string {
	return fmt.Sprintf("%s(%s)", function, trailID)
}
