// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Decode reads a single JSON document from r. Object key order is
// preserved.
func Decode(r io.Reader) (Value, error) {
	d := json.NewDecoder(r)
	d.UseNumber()
	v, err := decodeValue(d)
	if err != nil {
		return Value{}, err
	}
	if _, err := d.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("benchtree: unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(d *json.Decoder) (Value, error) {
	t, err := d.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	switch t := t.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return BoolOf(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return Value{}, fmt.Errorf("benchtree: bad number %q: %w", t, err)
		}
		return Num(f), nil
	case string:
		return Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			vs := []Value{}
			for d.More() {
				x, err := decodeValue(d)
				if err != nil {
					return Value{}, err
				}
				vs = append(vs, x)
			}
			if _, err := d.Token(); err != nil {
				return Value{}, err
			}
			return Seq(vs...), nil
		case '{':
			var fields []Field
			for d.More() {
				kt, err := d.Token()
				if err != nil {
					return Value{}, err
				}
				k, ok := kt.(string)
				if !ok {
					return Value{}, fmt.Errorf("benchtree: object key is %T, not string", kt)
				}
				x, err := decodeValue(d)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{k, x})
			}
			if _, err := d.Token(); err != nil {
				return Value{}, err
			}
			return Map(fields...), nil
		}
	}
	return Value{}, fmt.Errorf("benchtree: unexpected JSON token %v", t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	x, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// MarshalJSON implements json.Marshaler. Mappings are written in key
// order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.b))
	case Number:
		b, err := json.Marshal(v.num)
		if err != nil {
			return err
		}
		buf.Write(b)
	case String:
		b, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Sequence:
		buf.WriteByte('[')
		for i, x := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := x.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Mapping:
		buf.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(b)
			buf.WriteByte(':')
			if err := v.m.vals[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
