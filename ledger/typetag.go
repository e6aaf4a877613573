package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncorrectTypeTag = errors.New("incorrect type tag")

type TypeKind uint8

const (
	TypeBool TypeKind = iota
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeU128
	TypeU256
	TypeAddress
	TypeSigner
	TypeVector
	TypeStruct
)

var primitiveNames = map[string]TypeKind{
	"bool":    TypeBool,
	"u8":      TypeU8,
	"u16":     TypeU16,
	"u32":     TypeU32,
	"u64":     TypeU64,
	"u128":    TypeU128,
	"u256":    TypeU256,
	"address": TypeAddress,
	"signer":  TypeSigner,
}

// TypeTag is a run-time type of a ledger value: a primitive, a vector or a struct
// with optional type parameters.
type TypeTag struct {
	Kind TypeKind
	// Elem is set for vectors
	Elem *TypeTag
	// Struct fields
	Address Address
	Module  string
	Name    string
	Params  []TypeTag
}

func Primitive(kind TypeKind) TypeTag {
	return TypeTag{Kind: kind}
}

func VectorOf(elem TypeTag) TypeTag {
	return TypeTag{Kind: TypeVector, Elem: &elem}
}

func StructTag(addr Address, module, name string, params ...TypeTag) TypeTag {
	return TypeTag{Kind: TypeStruct, Address: addr, Module: module, Name: name, Params: params}
}

// SameStruct reports whether both tags name the same struct, ignoring type parameters.
func (t TypeTag) SameStruct(o TypeTag) bool {
	return t.Kind == TypeStruct && o.Kind == TypeStruct &&
		t.Address == o.Address && t.Module == o.Module && t.Name == o.Name
}

func (t TypeTag) Equal(o TypeTag) bool {
	return t.String() == o.String()
}

func (t TypeTag) String() string {
	switch t.Kind {
	case TypeVector:
		if t.Elem == nil {
			return "vector<>"
		}
		return "vector<" + t.Elem.String() + ">"
	case TypeStruct:
		var sb strings.Builder
		sb.WriteString(t.Address.String())
		sb.WriteString("::")
		sb.WriteString(t.Module)
		sb.WriteString("::")
		sb.WriteString(t.Name)
		if len(t.Params) > 0 {
			sb.WriteString("<")
			for i, p := range t.Params {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(p.String())
			}
			sb.WriteString(">")
		}
		return sb.String()
	}
	for name, kind := range primitiveNames {
		if kind == t.Kind {
			return name
		}
	}
	return fmt.Sprintf("unknown(%d)", t.Kind)
}

// ParseTypeTag parses the canonical textual form, e.g.
// "0x2::linked_table::LinkedTable<u64, 0xab::record::Record<0xab::record::Data>>".
func ParseTypeTag(s string) (TypeTag, error) {
	p := &typeParser{src: s}
	t, err := p.parse()
	if err != nil {
		return TypeTag{}, fmt.Errorf("%w: %q: %w", ErrIncorrectTypeTag, s, err)
	}
	if p.pos != len(p.src) {
		return TypeTag{}, fmt.Errorf("%w: %q: trailing input at %d", ErrIncorrectTypeTag, s, p.pos)
	}
	return t, nil
}

func MustTypeTag(s string) TypeTag {
	t, err := ParseTypeTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *typeParser) expect(tok string) error {
	p.skipSpaces()
	if !strings.HasPrefix(p.src[p.pos:], tok) {
		return fmt.Errorf("expected %q at %d", tok, p.pos)
	}
	p.pos += len(tok)
	return nil
}

func (p *typeParser) peek(tok string) bool {
	p.skipSpaces()
	return strings.HasPrefix(p.src[p.pos:], tok)
}

func (p *typeParser) params() (res []TypeTag, err error) {
	if !p.peek("<") {
		return nil, nil
	}
	p.pos++
	for {
		t, err := p.parse()
		if err != nil {
			return nil, err
		}
		res = append(res, t)
		if p.peek(",") {
			p.pos++
			continue
		}
		if err = p.expect(">"); err != nil {
			return nil, err
		}
		return res, nil
	}
}

func (p *typeParser) parse() (TypeTag, error) {
	head := p.ident()
	if head == "" {
		return TypeTag{}, fmt.Errorf("empty type at %d", p.pos)
	}
	if kind, ok := primitiveNames[head]; ok {
		return Primitive(kind), nil
	}
	if head == "vector" {
		params, err := p.params()
		if err != nil {
			return TypeTag{}, err
		}
		if len(params) != 1 {
			return TypeTag{}, fmt.Errorf("vector expects one parameter, got %d", len(params))
		}
		return VectorOf(params[0]), nil
	}
	addr, err := ParseAddress(head)
	if err != nil {
		return TypeTag{}, err
	}
	if err = p.expect("::"); err != nil {
		return TypeTag{}, err
	}
	module := p.ident()
	if err = p.expect("::"); err != nil {
		return TypeTag{}, err
	}
	name := p.ident()
	if module == "" || name == "" {
		return TypeTag{}, fmt.Errorf("incomplete struct tag at %d", p.pos)
	}
	params, err := p.params()
	if err != nil {
		return TypeTag{}, err
	}
	return StructTag(addr, module, name, params...), nil
}
