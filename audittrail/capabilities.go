package audittrail

import (
	"context"
	"fmt"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/capability"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/txwrapper"
)

type IssueParams struct {
	Role string
	// IssuedTo restricts the capability to one holder; the ledger transfers it there
	IssuedTo   *ledger.Address
	ValidFrom  *uint64
	ValidUntil *uint64
}

func (ip IssueParams) matches(c Capability) bool {
	return c.Role == ip.Role &&
		equalPtr(c.IssuedTo, ip.IssuedTo) &&
		equalPtr(c.ValidFrom, ip.ValidFrom) &&
		equalPtr(c.ValidUntil, ip.ValidUntil)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// IssueCapability creates a capability for role on the trail.
func (p *Program) IssueCapability(sender ledger.Address, trailID ledger.ObjectID, params IssueParams, opts ...CallOption) *txwrapper.Transaction[Capability] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if params.Role == "" {
			return nil, fmt.Errorf("%w: role name is empty", ledgererr.ErrInvalidArgument)
		}
		if params.ValidFrom != nil && params.ValidUntil != nil && *params.ValidFrom > *params.ValidUntil {
			return nil, fmt.Errorf("%w: validity window %d..%d is empty", ledgererr.ErrInvalidArgument, *params.ValidFrom, *params.ValidUntil)
		}
		return p.authenticated(ctx, reader, sender, trailID, FuncNewCapability, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(
				params.Role,
				callarg.Option[ledger.Address]{Value: params.IssuedTo},
				callarg.Option[uint64]{Value: params.ValidFrom},
				callarg.Option[uint64]{Value: params.ValidUntil},
			)
		})
	}
	apply := func(ctx context.Context, res *ledger.ExecutionResult, reader ledger.Reader) (Capability, error) {
		_, c, err := txwrapper.FindCreated(ctx, reader, res.Effects, func(id ledger.ObjectID, c Capability) bool {
			return c.TrailID == trailID && params.matches(c)
		})
		return c, err
	}
	return txwrapper.New(opName(FuncNewCapability, trailID), build, apply)
}

// RevokeCapability marks a capability as revoked on the trail.
func (p *Program) RevokeCapability(sender ledger.Address, trailID, capabilityID ledger.ObjectID, opts ...CallOption) *txwrapper.Transaction[CapabilityRevoked] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		return p.authenticated(ctx, reader, sender, trailID, FuncRevokeCapability, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(capabilityID)
		})
	}
	return txwrapper.New(opName(FuncRevokeCapability, trailID), build, eventResult[CapabilityRevoked]("CapabilityRevoked"))
}

// DestroyCapability burns a capability owned by the sender.
func (p *Program) DestroyCapability(sender ledger.Address, trailID, capabilityID ledger.ObjectID) *txwrapper.Transaction[CapabilityDestroyed] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		return p.authenticated(ctx, reader, sender, trailID, FuncDestroyCapability, []CallOption{WithCapability(capabilityID)}, nil)
	}
	return txwrapper.New(opName(FuncDestroyCapability, trailID), build, eventResult[CapabilityDestroyed]("CapabilityDestroyed"))
}

// Capabilities lists the audit trail capabilities owned by owner.
func (p *Program) Capabilities(ctx context.Context, reader ledger.Reader, owner ledger.Address) (map[ledger.ObjectID]Capability, error) {
	capType, err := p.CapabilityType()
	if err != nil {
		return nil, err
	}
	return capability.New[Capability](reader, capType).List(ctx, owner)
}
