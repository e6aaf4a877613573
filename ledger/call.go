package ledger

import (
	"fmt"
	"strings"
)

type ArgumentKind uint8

const (
	ArgumentPure ArgumentKind = iota
	ArgumentObject
	ArgumentShared
)

// SharedObject is a shared object argument. Shared objects are addressed by
// their initial version, the ledger picks the current one at execution.
type SharedObject struct {
	ID                   ObjectID
	InitialSharedVersion uint64
	Mutable              bool
}

// Argument is one positional argument of a call.
type Argument struct {
	Kind ArgumentKind
	// Pure is the encoded value for ArgumentPure
	Pure []byte
	// Object is the owned or immutable object for ArgumentObject
	Object ObjectRef
	// Shared is the shared object for ArgumentShared
	Shared SharedObject
}

func PureArgument(data []byte) Argument {
	return Argument{Kind: ArgumentPure, Pure: data}
}

func ObjectArgument(ref ObjectRef) Argument {
	return Argument{Kind: ArgumentObject, Object: ref}
}

func SharedArgument(id ObjectID, initialVersion uint64, mutable bool) Argument {
	return Argument{Kind: ArgumentShared, Shared: SharedObject{ID: id, InitialSharedVersion: initialVersion, Mutable: mutable}}
}

// ObjectID returns the id of an object argument; ok is false for pure arguments.
func (a Argument) ObjectID() (id ObjectID, ok bool) {
	switch a.Kind {
	case ArgumentObject:
		return a.Object.ID, true
	case ArgumentShared:
		return a.Shared.ID, true
	}
	return
}

func (a Argument) String() string {
	switch a.Kind {
	case ArgumentPure:
		return fmt.Sprintf("pure(%d bytes)", len(a.Pure))
	case ArgumentObject:
		return "object(" + a.Object.String() + ")"
	case ArgumentShared:
		mode := "imm"
		if a.Shared.Mutable {
			mode = "mut"
		}
		return fmt.Sprintf("shared(%s@%d,%s)", a.Shared.ID, a.Shared.InitialSharedVersion, mode)
	}
	return "unknown"
}

// CallPayload is a single entry point invocation on a ledger program.
type CallPayload struct {
	Package  ObjectID
	Module   string
	Function string
	TypeArgs []TypeTag
	Args     []Argument
}

// Target returns "package::module::function".
func (c *CallPayload) Target() string {
	return c.Package.String() + "::" + c.Module + "::" + c.Function
}

func (c *CallPayload) String() string {
	var sb strings.Builder
	sb.WriteString(c.Target())
	if len(c.TypeArgs) > 0 {
		sb.WriteString("<")
		for i, t := range c.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(t.String())
		}
		sb.WriteString(">")
	}
	sb.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(")")
	return sb.String()
}
