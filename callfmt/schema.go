package callfmt

import (
	"fmt"
	"strings"
)

// Kind is the declared semantic kind of a response field.
type Kind byte

const (
	KindBytes  Kind = 'b'
	KindNumber Kind = 'n'
	KindObject Kind = 'o'
	KindList   Kind = 'l'
	KindRaw    Kind = 'r'
)

// Type describes the shape of an RPC response.
// Leaves are either bytes or numbers; objects and lists
// apply the same rule to each of their members.
// Any other kind (including the zero Type) is passed
// through unmodified by the formatter.
type Type struct {
	kind   Kind
	fields []FieldType
	elem   *Type
}

type FieldType struct {
	Name string
	Type Type
}

func F(name string, t Type) FieldType {
	return FieldType{Name: name, Type: t}
}

func Bytes() Type  { return Type{kind: KindBytes} }
func Number() Type { return Type{kind: KindNumber} }
func Raw() Type    { return Type{kind: KindRaw} }

func List(e Type) Type {
	return Type{kind: KindList, elem: &e}
}

// Panics when a field name is empty or repeated.
func Object(fields ...FieldType) Type {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			panic("callfmt: object field without a name")
		}
		if _, ok := seen[f.Name]; ok {
			panic(fmt.Sprintf("callfmt: duplicate object field %q", f.Name))
		}
		seen[f.Name] = struct{}{}
	}
	return Type{kind: KindObject, fields: fields}
}

func (t Type) Kind() Kind { return t.kind }

// Returns the declared type of the named field.
func (t Type) Field(name string) (Type, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return Type{}, false
}

func (t Type) String() string {
	switch t.kind {
	case KindBytes:
		return "bytes"
	case KindNumber:
		return "number"
	case KindRaw:
		return "raw"
	case KindList:
		return "[]" + t.elem.String()
	case KindObject:
		var s strings.Builder
		s.WriteString("{")
		for i := range t.fields {
			s.WriteString(t.fields[i].Name)
			s.WriteString(":")
			s.WriteString(t.fields[i].Type.String())
			if i+1 != len(t.fields) {
				s.WriteString(",")
			}
		}
		s.WriteString("}")
		return s.String()
	default:
		return fmt.Sprintf("unknown-kind=%d", t.kind)
	}
}
