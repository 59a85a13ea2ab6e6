/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textencoding

import (
	"encoding/binary"
	"unicode/utf8"
)

var (
	// UTF32LE is the little-endian UTF-32 encoding.
	UTF32LE Encoding = utf32Encoding{order: binary.LittleEndian, name: "UTF-32LE"}
	// UTF32BE is the big-endian UTF-32 encoding.
	UTF32BE Encoding = utf32Encoding{order: binary.BigEndian, name: "UTF-32BE"}
)

type utf32Encoding struct {
	order binary.ByteOrder
	name  string
}

func (e utf32Encoding) Name() string { return e.name }

func (utf32Encoding) UnitSize() int { return 4 }

func (e utf32Encoding) DecodePoint(src []byte) DecodeResult {
	if len(src) < 4 {
		return truncated(src)
	}
	value := e.order.Uint32(src)
	if value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
		return invalid(4)
	}
	return valid(rune(value), 4)
}

func (e utf32Encoding) EncodePoint(dst []byte, point rune) int {
	e.order.PutUint32(dst, uint32(sanitise(point)))
	return 4
}
