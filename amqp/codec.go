/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package amqp

import (
	"encoding/binary"
	"fmt"
)

// Type codes for the encodings this codec supports. This is the subset of
// the AMQP 1.0 type system used by the security layer performatives, not a
// general message codec.
const (
	typeDescribed = 0x00
	typeNull      = 0x40
	typeTrue      = 0x41
	typeFalse     = 0x42
	typeUlong0    = 0x44
	typeList0     = 0x45
	typeUbyte     = 0x50
	typeSmallU    = 0x53
	typeUlong     = 0x80
	typeVbin8     = 0xa0
	typeStr8      = 0xa1
	typeSym8      = 0xa3
	typeVbin32    = 0xb0
	typeStr32     = 0xb1
	typeSym32     = 0xb3
	typeList8     = 0xc0
	typeList32    = 0xd0
	typeArray8    = 0xe0
	typeArray32   = 0xf0
)

// Described is a described value: a numeric descriptor and a wrapped value.
type Described struct {
	Descriptor uint64
	Value      interface{}
}

// Marshal appends the AMQP encoding of v to buf and returns the extended
// buffer.
//
// Supported Go types: nil, bool, uint8, uint64, string, Symbol, []byte,
// []Symbol (encoded as an array), []interface{} (encoded as a list) and
// Described.
func Marshal(buf []byte, v interface{}) []byte {
	switch v := v.(type) {
	case nil:
		return append(buf, typeNull)
	case bool:
		if v {
			return append(buf, typeTrue)
		}
		return append(buf, typeFalse)
	case uint8:
		return append(buf, typeUbyte, v)
	case uint64:
		switch {
		case v == 0:
			return append(buf, typeUlong0)
		case v <= 0xff:
			return append(buf, typeSmallU, byte(v))
		default:
			buf = append(buf, typeUlong)
			return binary.BigEndian.AppendUint64(buf, v)
		}
	case string:
		return marshalVariable(buf, typeStr8, typeStr32, []byte(v))
	case Symbol:
		return marshalVariable(buf, typeSym8, typeSym32, []byte(v))
	case []byte:
		return marshalVariable(buf, typeVbin8, typeVbin32, v)
	case []Symbol:
		return marshalSymbolArray(buf, v)
	case []interface{}:
		return marshalList(buf, v)
	case Described:
		buf = append(buf, typeDescribed)
		buf = Marshal(buf, v.Descriptor)
		return Marshal(buf, v.Value)
	default:
		panic(fmt.Sprintf("amqp.Marshal: unsupported type %T", v))
	}
}

func marshalVariable(buf []byte, small, large byte, data []byte) []byte {
	if len(data) <= 0xff {
		buf = append(buf, small, byte(len(data)))
	} else {
		buf = append(buf, large)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
	}
	return append(buf, data...)
}

func marshalList(buf []byte, items []interface{}) []byte {
	if len(items) == 0 {
		return append(buf, typeList0)
	}
	var body []byte
	for _, item := range items {
		body = Marshal(body, item)
	}
	if len(body)+1 <= 0xff && len(items) <= 0xff {
		buf = append(buf, typeList8, byte(len(body)+1), byte(len(items)))
	} else {
		buf = append(buf, typeList32)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(body)+4))
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(items)))
	}
	return append(buf, body...)
}

// Symbol arrays use a single sym8 constructor, so each element is limited
// to 255 bytes. Mechanism names are far shorter in practice.
func marshalSymbolArray(buf []byte, syms []Symbol) []byte {
	var body []byte
	body = append(body, typeSym8)
	for _, s := range syms {
		if len(s) > 0xff {
			panic(fmt.Sprintf("amqp.Marshal: symbol too long for array: %q", s))
		}
		body = append(body, byte(len(s)))
		body = append(body, s...)
	}
	if len(body)+1 <= 0xff && len(syms) <= 0xff {
		buf = append(buf, typeArray8, byte(len(body)+1), byte(len(syms)))
	} else {
		buf = append(buf, typeArray32)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(body)+4))
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(syms)))
	}
	return append(buf, body...)
}

// Unmarshal decodes one value from data, returning the value and the
// number of bytes consumed. Lists decode as []interface{}, symbol arrays
// as []Symbol, described values as Described.
func Unmarshal(data []byte) (interface{}, int, error) {
	d := decoder{buf: data}
	v, err := d.value()
	if err != nil {
		return nil, d.pos, err
	}
	return v, d.pos, nil
}

type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) byte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, Errorf(DecodeError, "unexpected end of data at offset %d", d.pos)
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, Errorf(DecodeError, "truncated value at offset %d", d.pos)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) size(wide bool) (int, error) {
	if wide {
		b, err := d.take(4)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint32(b)), nil
	}
	b, err := d.byte()
	return int(b), err
}

// count reads an element count and bounds it by the undecoded remainder.
// Every element encodes to at least one byte, so a count exceeding the
// bytes left is forged and must not drive an allocation.
func (d *decoder) count(wide bool) (int, error) {
	n, err := d.size(wide)
	if err != nil {
		return 0, err
	}
	if n > len(d.buf)-d.pos {
		return 0, Errorf(DecodeError, "count %d exceeds %d remaining bytes", n, len(d.buf)-d.pos)
	}
	return n, nil
}

func (d *decoder) value() (interface{}, error) {
	code, err := d.byte()
	if err != nil {
		return nil, err
	}
	switch code {
	case typeNull:
		return nil, nil
	case typeTrue:
		return true, nil
	case typeFalse:
		return false, nil
	case typeUlong0:
		return uint64(0), nil
	case typeUbyte:
		b, err := d.byte()
		return b, err
	case typeSmallU:
		b, err := d.byte()
		return uint64(b), err
	case typeUlong:
		b, err := d.take(8)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.Uint64(b), nil
	case typeVbin8, typeVbin32:
		n, err := d.size(code == typeVbin32)
		if err != nil {
			return nil, err
		}
		b, err := d.take(n)
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), b...), nil
	case typeStr8, typeStr32:
		n, err := d.size(code == typeStr32)
		if err != nil {
			return nil, err
		}
		b, err := d.take(n)
		return string(b), err
	case typeSym8, typeSym32:
		n, err := d.size(code == typeSym32)
		if err != nil {
			return nil, err
		}
		b, err := d.take(n)
		return Symbol(b), err
	case typeList0:
		return []interface{}{}, nil
	case typeList8, typeList32:
		wide := code == typeList32
		if _, err := d.size(wide); err != nil { // overall size, unused
			return nil, err
		}
		count, err := d.count(wide)
		if err != nil {
			return nil, err
		}
		items := make([]interface{}, 0, count)
		for i := 0; i < count; i++ {
			v, err := d.value()
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case typeArray8, typeArray32:
		return d.array(code == typeArray32)
	case typeDescribed:
		desc, err := d.value()
		if err != nil {
			return nil, err
		}
		code, ok := desc.(uint64)
		if !ok {
			return nil, Errorf(DecodeError, "unsupported descriptor type %T", desc)
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		return Described{Descriptor: code, Value: v}, nil
	default:
		return nil, Errorf(DecodeError, "unsupported type code 0x%02x", code)
	}
}

func (d *decoder) array(wide bool) (interface{}, error) {
	if _, err := d.size(wide); err != nil {
		return nil, err
	}
	count, err := d.count(wide)
	if err != nil {
		return nil, err
	}
	ctor, err := d.byte()
	if err != nil {
		return nil, err
	}
	if ctor != typeSym8 && ctor != typeSym32 {
		return nil, Errorf(DecodeError, "unsupported array constructor 0x%02x", ctor)
	}
	syms := make([]Symbol, 0, count)
	for i := 0; i < count; i++ {
		n, err := d.size(ctor == typeSym32)
		if err != nil {
			return nil, err
		}
		b, err := d.take(n)
		if err != nil {
			return nil, err
		}
		syms = append(syms, Symbol(b))
	}
	return syms, nil
}
