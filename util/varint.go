// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// maximum encoded length: eight 7 bit groups and a final full byte
const varint64Bytes = 9

// AppendVarint64 - append value as little endian 7 bit groups
//
// each byte but the last has its top bit set; the ninth byte, when
// present, carries the remaining 8 bits without a continuation flag
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < varint64Bytes && value >= 0x80; i += 1 {
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// ToVarint64 - encoded form of value in a new buffer
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, varint64Bytes), value)
}

// FromVarint64 - decode a value from the front of buffer
//
// returns the value and the bytes consumed, or 0, 0 when truncated
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	for i, b := range buffer {
		if varint64Bytes-1 == i {
			return value | uint64(b)<<(7*uint(i)), i + 1
		}
		value |= uint64(b&0x7f) << (7 * uint(i))
		if 0 == b&0x80 {
			return value, i + 1
		}
	}
	return 0, 0
}

// BoundedVarint64 - decode a length or count no larger than maximum
//
// returns 0, 0 when truncated or out of range
func BoundedVarint64(buffer []byte, maximum int) (int, int) {
	value, n := FromVarint64(buffer)
	if 0 == n || maximum < 0 || value > uint64(maximum) {
		return 0, 0
	}
	return int(value), n
}
