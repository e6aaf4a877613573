// Package callcomposer assembles complete call payloads for program entry points.
package callcomposer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/anyproto/any-trail/app/logger"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/ledgererr"
	"github.com/anyproto/any-trail/ledger/objectref"
)

var log = logger.NewNamed("ledger.callcomposer")

// ExtendFunc appends the operation specific arguments. target is the type of
// the resolved target object, zero for calls without a target.
type ExtendFunc func(b *callarg.Builder, target ledger.TypeTag) error

// CapabilityFinder resolves the capability argument owner holds for target.
type CapabilityFinder interface {
	Find(ctx context.Context, owner ledger.Address, target ledger.ObjectID) (ledger.Argument, error)
}

// Call describes one entry point invocation.
type Call struct {
	Module   string
	Function string
	TypeArgs []ledger.TypeTag
	// Target is the shared object the call operates on
	Target ledger.ObjectID
	// CapabilityID skips the capability lookup when set
	CapabilityID *ledger.ObjectID
	// TargetTypeArgs takes the type arguments from the target's type parameters
	TargetTypeArgs bool
	// WithClock appends the clock object as the last argument
	WithClock bool
}

func (c Call) name() string {
	return c.Module + "::" + c.Function
}

func New(reader ledger.Reader, network ledger.Network, caps CapabilityFinder) *Composer {
	return &Composer{
		objects: objectref.New(reader),
		caps:    caps,
		network: network,
	}
}

// Composer builds payloads in the fixed order: target, capability, extras, clock.
type Composer struct {
	objects *objectref.Resolver
	caps    CapabilityFinder
	network ledger.Network
}

// Authenticated composes a call against a mutable target gated by the capability sender holds.
func (c *Composer) Authenticated(ctx context.Context, sender ledger.Address, call Call, extend ExtendFunc) (*ledger.CallPayload, error) {
	pkg, err := c.network.Package()
	if err != nil {
		return nil, err
	}
	targetArg, targetType, err := c.objects.Shared(ctx, call.Target, true)
	if err != nil {
		return nil, fmt.Errorf("%s: target: %w", call.name(), err)
	}
	capArg, err := c.capability(ctx, sender, call)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.name(), err)
	}
	return c.finish(pkg, call, targetType, callarg.NewBuilder(targetArg, capArg), extend)
}

// ReadOnly composes a call against an immutable target without a capability.
func (c *Composer) ReadOnly(ctx context.Context, call Call, extend ExtendFunc) (*ledger.CallPayload, error) {
	pkg, err := c.network.Package()
	if err != nil {
		return nil, err
	}
	targetArg, targetType, err := c.objects.Shared(ctx, call.Target, false)
	if err != nil {
		return nil, fmt.Errorf("%s: target: %w", call.name(), err)
	}
	return c.finish(pkg, call, targetType, callarg.NewBuilder(targetArg), extend)
}

// Plain composes a call without target and capability, e.g. resource creation.
func (c *Composer) Plain(ctx context.Context, call Call, extend ExtendFunc) (*ledger.CallPayload, error) {
	pkg, err := c.network.Package()
	if err != nil {
		return nil, err
	}
	if call.TargetTypeArgs {
		return nil, fmt.Errorf("%w: %s: call without target can't take target type arguments", ledgererr.ErrInvalidArgument, call.name())
	}
	return c.finish(pkg, call, ledger.TypeTag{}, callarg.NewBuilder(), extend)
}

func (c *Composer) capability(ctx context.Context, sender ledger.Address, call Call) (ledger.Argument, error) {
	if call.CapabilityID != nil {
		arg, _, err := c.objects.Owned(ctx, *call.CapabilityID)
		if err != nil {
			return ledger.Argument{}, fmt.Errorf("capability %s: %w", *call.CapabilityID, err)
		}
		return arg, nil
	}
	if c.caps == nil {
		return ledger.Argument{}, fmt.Errorf("%w: no capability finder and no capability id", ledgererr.ErrInvalidConfig)
	}
	return c.caps.Find(ctx, sender, call.Target)
}

func (c *Composer) finish(pkg ledger.ObjectID, call Call, targetType ledger.TypeTag, b *callarg.Builder, extend ExtendFunc) (*ledger.CallPayload, error) {
	if extend != nil {
		if err := extend(b, targetType); err != nil {
			return nil, fmt.Errorf("%s: arguments: %w", call.name(), err)
		}
	}
	if call.WithClock {
		clock, err := c.network.Clock()
		if err != nil {
			return nil, err
		}
		b.Add(clock)
	}
	typeArgs := call.TypeArgs
	if call.TargetTypeArgs {
		typeArgs = targetType.Params
	}
	payload := &ledger.CallPayload{
		Package:  pkg,
		Module:   call.Module,
		Function: call.Function,
		TypeArgs: append([]ledger.TypeTag(nil), typeArgs...),
		Args:     b.Args(),
	}
	log.Debug("call composed", zap.String("call", payload.String()))
	return payload, nil
}
