// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"encoding/binary"
	"fmt"
)

// Kind - the type tag stored as the first byte of a slot record
type Kind byte

// the kinds of value a slot can hold
const (
	Integer Kind = 'I'
	String  Kind = 'S'
)

const integerLength = 8

// Value - the content of a slot
type Value struct {
	kind    Kind
	integer int64
	text    string
}

// IntegerValue - make an integer value
func IntegerValue(i int64) Value {
	return Value{kind: Integer, integer: i}
}

// StringValue - make a string value
func StringValue(s string) Value {
	return Value{kind: String, text: s}
}

// Kind - the type of the value
func (v Value) Kind() Kind {
	return v.kind
}

// Integer - the integer content, false if the value is not an integer
func (v Value) Integer() (int64, bool) {
	return v.integer, Integer == v.kind
}

// Text - the string content, false if the value is not a string
func (v Value) Text() (string, bool) {
	return v.text, String == v.kind
}

// String - printable form for logging
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return fmt.Sprintf("%d", v.integer)
	case String:
		return fmt.Sprintf("%q", v.text)
	default:
		return "<invalid>"
	}
}

// pack the value into its stored form
func (v Value) pack() ([]byte, error) {
	switch v.kind {
	case Integer:
		buffer := make([]byte, 1+integerLength)
		buffer[0] = byte(Integer)
		binary.BigEndian.PutUint64(buffer[1:], uint64(v.integer))
		return buffer, nil
	case String:
		buffer := make([]byte, 1, 1+len(v.text))
		buffer[0] = byte(String)
		return append(buffer, v.text...), nil
	default:
		return nil, fmt.Errorf("cannot pack value kind: 0x%02x", byte(v.kind))
	}
}

// unpack a stored record
func unpack(record []byte) (Value, error) {
	if 0 == len(record) {
		return Value{}, fmt.Errorf("empty record")
	}

	switch Kind(record[0]) {
	case Integer:
		if 1+integerLength != len(record) {
			return Value{}, fmt.Errorf("integer record length: %d  expected: %d", len(record), 1+integerLength)
		}
		return IntegerValue(int64(binary.BigEndian.Uint64(record[1:]))), nil
	case String:
		return StringValue(string(record[1:])), nil
	default:
		return Value{}, fmt.Errorf("unknown record kind: 0x%02x", record[0])
	}
}
