// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// AppendBytes - append a length prefixed byte field
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// ReadBytes - extract a length prefixed byte field from the front of a buffer
//
// returns the field and the number of bytes consumed, or nil, 0 if
// the buffer is truncated or the length exceeds maximum
func ReadBytes(buffer []byte, maximum int) ([]byte, int) {
	length, n := BoundedVarint64(buffer, maximum)
	if 0 == n {
		return nil, 0
	}
	if len(buffer) < n+length {
		return nil, 0
	}
	field := make([]byte, length)
	copy(field, buffer[n:n+length])
	return field, n + length
}
