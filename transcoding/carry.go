/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transcoding

import "github.com/ARM-software/golang-textconv/textencoding"

const carryCapacity = textencoding.MaxUnitBytes

// carryBuffer holds at most one encoded unit.
type carryBuffer struct {
	bytes    [carryCapacity]byte
	numBytes int
}

func (b *carryBuffer) view() []byte {
	return b.bytes[:b.numBytes]
}

func (b *carryBuffer) isEmpty() bool {
	return b.numBytes == 0
}

// appendFrom copies as many bytes of src as fit and returns how many were copied.
func (b *carryBuffer) appendFrom(src []byte) int {
	n := copy(b.bytes[b.numBytes:], src)
	b.numBytes += n
	return n
}

// copyTo copies as many buffered bytes as fit into dst, removes them from the buffer and returns how many were copied.
func (b *carryBuffer) copyTo(dst []byte) int {
	n := copy(dst, b.view())
	b.popFront(n)
	return n
}

func (b *carryBuffer) popFront(n int) {
	copy(b.bytes[:], b.bytes[n:b.numBytes])
	b.numBytes -= n
}

func (b *carryBuffer) reset() {
	b.numBytes = 0
}
