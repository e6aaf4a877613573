// Package callarg encodes call arguments and decodes ledger contents with the
// canonical BCS codec.
package callarg

import (
	"fmt"

	"github.com/fardream/go-bcs/bcs"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/ledgererr"
)

// Option is the canonical optional value. A nil Value encodes as None.
type Option[T any] struct {
	Value *T `bcs:"optional"`
}

func Some[T any](v T) Option[T] {
	return Option[T]{Value: &v}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.Value != nil
}

// Get returns the value or the zero value with ok == false
func (o Option[T]) Get() (v T, ok bool) {
	if o.Value == nil {
		return
	}
	return *o.Value, true
}

// Encode returns the canonical encoding of v.
func Encode(v any) ([]byte, error) {
	data, err := bcs.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: can't encode %#v: %w", ledgererr.ErrInvalidArgument, v, err)
	}
	return data, nil
}

// Pure encodes v as a pure argument.
func Pure(v any) (ledger.Argument, error) {
	data, err := Encode(v)
	if err != nil {
		return ledger.Argument{}, err
	}
	return ledger.PureArgument(data), nil
}

// Decode decodes data into out. All bytes must be consumed.
func Decode(data []byte, out any) error {
	n, err := bcs.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("%w: can't decode %T: %w", ledgererr.ErrDeserialization, out, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: can't decode %T: %d trailing bytes", ledgererr.ErrDeserialization, out, len(data)-n)
	}
	return nil
}

// DecodePure is the inverse of Pure.
func DecodePure(arg ledger.Argument, out any) error {
	if arg.Kind != ledger.ArgumentPure {
		return fmt.Errorf("%w: %s is not a pure argument", ledgererr.ErrInvalidArgument, arg)
	}
	return Decode(arg.Pure, out)
}

func Object(ref ledger.ObjectRef) ledger.Argument {
	return ledger.ObjectArgument(ref)
}

func Shared(id ledger.ObjectID, initialVersion uint64, mutable bool) ledger.Argument {
	return ledger.SharedArgument(id, initialVersion, mutable)
}
