/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textencoding

import (
	"encoding/binary"
	"unicode/utf16"
)

const (
	surrogateMin      = 0xd800
	lowSurrogateMin   = 0xdc00
	surrogateMax      = 0xdfff
	firstSupplemental = 0x10000
)

var (
	// UTF16LE is the little-endian UTF-16 encoding. No byte order mark is produced nor interpreted.
	UTF16LE Encoding = utf16Encoding{order: binary.LittleEndian, name: "UTF-16LE"}
	// UTF16BE is the big-endian UTF-16 encoding. No byte order mark is produced nor interpreted.
	UTF16BE Encoding = utf16Encoding{order: binary.BigEndian, name: "UTF-16BE"}
)

type utf16Encoding struct {
	order binary.ByteOrder
	name  string
}

func (e utf16Encoding) Name() string { return e.name }

func (utf16Encoding) UnitSize() int { return 2 }

func (e utf16Encoding) DecodePoint(src []byte) DecodeResult {
	if len(src) < 2 {
		return truncated(src)
	}
	first := rune(e.order.Uint16(src))
	switch {
	case first < surrogateMin || first > surrogateMax:
		return valid(first, 2)
	case first >= lowSurrogateMin:
		// unpaired low surrogate
		return invalid(2)
	case len(src) < 4:
		return truncated(src)
	}
	second := rune(e.order.Uint16(src[2:]))
	if second < lowSurrogateMin || second > surrogateMax {
		return invalid(2)
	}
	return valid(utf16.DecodeRune(first, second), 4)
}

func (e utf16Encoding) EncodePoint(dst []byte, point rune) int {
	point = sanitise(point)
	if point < firstSupplemental {
		e.order.PutUint16(dst, uint16(point))
		return 2
	}
	high, low := utf16.EncodeRune(point)
	_ = dst[3]
	e.order.PutUint16(dst, uint16(high))
	e.order.PutUint16(dst[2:], uint16(low))
	return 4
}
