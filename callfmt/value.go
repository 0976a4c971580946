package callfmt

import (
	"bytes"
	"math/big"
	"strconv"

	"github.com/indexsupply/ethcall/eth"

	"github.com/goccy/go-json"
	"github.com/holiman/uint256"
)

// Rep names the populated variant of a Value.
type Rep byte

const (
	RepRaw    Rep = iota // Raw: passed through unmodified
	RepHex               // Hex: 0x string
	RepDec               // Dec: base 10 string
	RepBig               // Big
	RepNum               // Num
	RepU256              // U256
	RepBuf               // Buf
	RepArray             // Array
	RepObject            // Fields
	RepList              // Elems
)

var repNames = [...]string{
	RepRaw:    "raw",
	RepHex:    "hex",
	RepDec:    "dec",
	RepBig:    "big",
	RepNum:    "num",
	RepU256:   "u256",
	RepBuf:    "buf",
	RepArray:  "array",
	RepObject: "object",
	RepList:   "list",
}

func (r Rep) String() string {
	if int(r) >= len(repNames) {
		return "rep(" + strconv.Itoa(int(r)) + ")"
	}
	return repNames[r]
}

type Field struct {
	Name  string
	Value Value
}

// Value is the output of the formatter.
// Exactly one variant, named by Rep, is populated.
type Value struct {
	Rep Rep

	Hex   string
	Dec   string
	Big   *big.Int
	Num   uint64
	U256  uint256.Int
	Buf   eth.Bytes
	Array Array

	Fields []Field
	Elems  []Value
	Raw    any
}

// Returns the populated variant.
// Objects become map[string]any and lists []any.
func (v Value) Any() any {
	switch v.Rep {
	case RepHex:
		return v.Hex
	case RepDec:
		return v.Dec
	case RepBig:
		return v.Big
	case RepNum:
		return v.Num
	case RepU256:
		return v.U256
	case RepBuf:
		return v.Buf
	case RepArray:
		return v.Array
	case RepObject:
		m := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			m[f.Name] = f.Value.Any()
		}
		return m
	case RepList:
		l := make([]any, len(v.Elems))
		for i := range v.Elems {
			l[i] = v.Elems[i].Any()
		}
		return l
	default:
		return v.Raw
	}
}

// Returns the named field of an object.
func (v Value) Get(name string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Returns the byte content of a bytes-like Value
// independent of its representation.
func (v Value) Bytes() ([]byte, bool) {
	switch v.Rep {
	case RepHex:
		b, err := eth.DecodeHex(v.Hex)
		return b, err == nil
	case RepBuf:
		return append([]byte{}, v.Buf...), true
	case RepArray:
		return v.Array.Bytes(), true
	default:
		return nil, false
	}
}

// Returns the integer held by a number-like Value
// independent of its representation.
func (v Value) BigInt() (*big.Int, bool) {
	switch v.Rep {
	case RepHex:
		b, err := eth.DecodeQuantity(v.Hex)
		if err != nil {
			return nil, false
		}
		return new(big.Int).SetBytes(b), true
	case RepDec:
		return new(big.Int).SetString(v.Dec, 10)
	case RepBig:
		if v.Big == nil {
			return nil, false
		}
		return new(big.Int).Set(v.Big), true
	case RepNum:
		return new(big.Int).SetUint64(v.Num), true
	case RepU256:
		return v.U256.ToBig(), true
	default:
		return nil, false
	}
}

// Integers that can exceed 2^53 (Big, U256) are
// encoded as base 10 strings. Bytes are 0x strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Rep {
	case RepHex:
		return json.Marshal(v.Hex)
	case RepDec:
		return json.Marshal(v.Dec)
	case RepBig:
		if v.Big == nil {
			return []byte("null"), nil
		}
		return json.Marshal(v.Big.String())
	case RepNum:
		return strconv.AppendUint(nil, v.Num, 10), nil
	case RepU256:
		return json.Marshal(v.U256.Dec())
	case RepBuf:
		return v.Buf.MarshalJSON()
	case RepArray:
		return json.Marshal(v.Array.String())
	case RepObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			fv, err := f.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(fv)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case RepList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i := range v.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			ev, err := v.Elems[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(ev)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v.Raw)
	}
}
