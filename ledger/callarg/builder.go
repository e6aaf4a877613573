package callarg

import "github.com/anyproto/any-trail/ledger"

// Builder accumulates the positional arguments of a call in order.
type Builder struct {
	args []ledger.Argument
}

func NewBuilder(args ...ledger.Argument) *Builder {
	return &Builder{args: append([]ledger.Argument(nil), args...)}
}

func (b *Builder) Add(args ...ledger.Argument) *Builder {
	b.args = append(b.args, args...)
	return b
}

// AddPure encodes each value and appends it; nothing is appended on error
func (b *Builder) AddPure(values ...any) error {
	encoded := make([]ledger.Argument, 0, len(values))
	for _, v := range values {
		arg, err := Pure(v)
		if err != nil {
			return err
		}
		encoded = append(encoded, arg)
	}
	b.args = append(b.args, encoded...)
	return nil
}

func (b *Builder) Len() int {
	return len(b.args)
}

// Args returns a copy of the accumulated arguments
func (b *Builder) Args() []ledger.Argument {
	return append([]ledger.Argument(nil), b.args...)
}
