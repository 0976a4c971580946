// Formats json-rpc responses into caller selected
// representations.
//
// A response is described by a Type whose leaves are
// either bytes or numbers. Format walks the decoded response
// alongside its Type and converts each leaf according to
// the matching Config selector. Formatting is a pure function
// of its inputs and is safe for concurrent use.
package callfmt

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/indexsupply/ethcall/eth"

	"github.com/goccy/go-json"
)

// Formats v, a value produced by json decoding an rpc
// result, according to t and c.
// The Config is validated before any field is visited.
// JSON null leaves become a RepRaw Value holding nil.
func Format(t Type, v any, c Config) (Value, error) {
	if err := c.Validate(); err != nil {
		return Value{}, err
	}
	return format("", t, v, c)
}

// Decodes data and formats it according to t and c.
// JSON numbers in pass-through fields are kept as json.Number.
func Unmarshal(t Type, data []byte, c Config) (Value, error) {
	if err := c.Validate(); err != nil {
		return Value{}, err
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return Value{}, fmt.Errorf("decoding %s: %w", t, err)
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return Value{}, fmt.Errorf("decoding %s: trailing data after json value", t)
	}
	return format("", t, v, c)
}

func format(path string, t Type, v any, c Config) (Value, error) {
	if v == nil {
		return Value{Rep: RepRaw}, nil
	}
	switch t.kind {
	case KindBytes:
		s, ok := v.(string)
		if !ok {
			return Value{}, typeErr(path, "hex string", v)
		}
		b, err := eth.DecodeHex(s)
		if err != nil {
			return Value{}, pathErr(path, err)
		}
		res, err := FormatBytes(b, c.Bytes)
		return res, pathErr(path, err)
	case KindNumber:
		s, ok := v.(string)
		if !ok {
			return Value{}, typeErr(path, "hex string", v)
		}
		res, err := FormatNumber(s, c.Number, c.Lossy)
		return res, pathErr(path, err)
	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return Value{}, typeErr(path, "object", v)
		}
		res := Value{Rep: RepObject, Fields: make([]Field, 0, len(m))}
		for _, f := range t.fields {
			fv, ok := m[f.Name]
			if !ok {
				continue
			}
			x, err := format(join(path, f.Name), f.Type, fv, c)
			if err != nil {
				return Value{}, err
			}
			res.Fields = append(res.Fields, Field{Name: f.Name, Value: x})
		}
		var extra []string
		for k := range m {
			if _, ok := t.Field(k); !ok {
				extra = append(extra, k)
			}
		}
		slices.Sort(extra)
		for _, k := range extra {
			res.Fields = append(res.Fields, Field{Name: k, Value: Value{Rep: RepRaw, Raw: m[k]}})
		}
		return res, nil
	case KindList:
		l, ok := v.([]any)
		if !ok {
			return Value{}, typeErr(path, "array", v)
		}
		res := Value{Rep: RepList, Elems: make([]Value, len(l))}
		for i := range l {
			x, err := format(path+"["+strconv.Itoa(i)+"]", *t.elem, l[i], c)
			if err != nil {
				return Value{}, err
			}
			res.Elems[i] = x
		}
		return res, nil
	default:
		return Value{Rep: RepRaw, Raw: v}, nil
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func pathErr(path string, err error) error {
	if err == nil || path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}

func typeErr(path string, want string, got any) error {
	return pathErr(path, fmt.Errorf("%w: want %s got %T", ErrUnexpectedType, want, got))
}
