package audittrail

import (
	"context"
	"fmt"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/txwrapper"
)

func validateRole(name string, perms []Permission) error {
	if name == "" {
		return fmt.Errorf("%w: role name is empty", ledgererr.ErrInvalidArgument)
	}
	for _, p := range perms {
		if int(p) >= len(permissionNames) {
			return fmt.Errorf("%w: role %q: unknown %s", ledgererr.ErrInvalidArgument, name, p)
		}
	}
	return nil
}

func (p *Program) CreateRole(sender ledger.Address, trailID ledger.ObjectID, name string, perms []Permission, opts ...CallOption) *txwrapper.Transaction[RoleCreated] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if err := validateRole(name, perms); err != nil {
			return nil, err
		}
		return p.authenticated(ctx, reader, sender, trailID, FuncCreateRole, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(name, perms)
		})
	}
	return txwrapper.New(opName(FuncCreateRole, trailID), build, eventResult[RoleCreated]("RoleCreated"))
}

func (p *Program) UpdateRole(sender ledger.Address, trailID ledger.ObjectID, name string, perms []Permission, opts ...CallOption) *txwrapper.Transaction[RoleUpdated] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if err := validateRole(name, perms); err != nil {
			return nil, err
		}
		return p.authenticated(ctx, reader, sender, trailID, FuncUpdateRole, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(name, perms)
		})
	}
	return txwrapper.New(opName(FuncUpdateRole, trailID), build, eventResult[RoleUpdated]("RoleUpdated"))
}

func (p *Program) DeleteRole(sender ledger.Address, trailID ledger.ObjectID, name string, opts ...CallOption) *txwrapper.Transaction[RoleDeleted] {
	build := func(ctx context.Context, reader ledger.Reader) (*ledger.CallPayload, error) {
		if err := validateRole(name, nil); err != nil {
			return nil, err
		}
		return p.authenticated(ctx, reader, sender, trailID, FuncDeleteRole, opts, func(b *callarg.Builder, _ ledger.TypeTag) error {
			return b.AddPure(name)
		})
	}
	return txwrapper.New(opName(FuncDeleteRole, trailID), build, eventResult[RoleDeleted]("RoleDeleted"))
}

// Roles returns the role map of the trail keyed by role name.
func (p *Program) Roles(ctx context.Context, reader ledger.Reader, trailID ledger.ObjectID) (map[string][]Permission, error) {
	trail, err := p.Get(ctx, reader, trailID)
	if err != nil {
		return nil, err
	}
	res := make(map[string][]Permission, len(trail.Roles.Roles))
	for _, r := range trail.Roles.Roles {
		res[r.Name] = r.Permissions
	}
	return res, nil
}
