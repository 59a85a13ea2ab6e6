/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textencoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ASCII is the 7-bit US-ASCII encoding. Bytes above 0x7F decode as ReplacementChar.
	ASCII Encoding = rangeEncoding{limit: utf8.RuneSelf - 1, name: "US-ASCII"}
	// Latin1 is ISO-8859-1 where every byte maps to the code point of the same value.
	Latin1 Encoding = rangeEncoding{limit: 0xff, name: "ISO-8859-1"}
)

// rangeEncoding maps bytes up to limit onto the code points of the same value.
type rangeEncoding struct {
	limit rune
	name  string
}

func (e rangeEncoding) Name() string { return e.name }

func (rangeEncoding) UnitSize() int { return 1 }

func (e rangeEncoding) DecodePoint(src []byte) DecodeResult {
	if len(src) == 0 {
		return truncated(src)
	}
	if rune(src[0]) > e.limit {
		return invalid(1)
	}
	return valid(rune(src[0]), 1)
}

func (e rangeEncoding) EncodePoint(dst []byte, point rune) int {
	if point < 0 || point > e.limit {
		dst[0] = encoding.ASCIISub
	} else {
		dst[0] = byte(point)
	}
	return 1
}

// Charmap is a single byte encoding backed by one of golang.org/x/text's character maps e.g. Windows-1252.
type Charmap struct {
	charmap *charmap.Charmap
}

// NewCharmap returns an Encoding for the x/text character map cm.
func NewCharmap(cm *charmap.Charmap) *Charmap {
	return &Charmap{charmap: cm}
}

func (c *Charmap) Name() string { return c.charmap.String() }

func (c *Charmap) UnitSize() int { return 1 }

func (c *Charmap) DecodePoint(src []byte) DecodeResult {
	if len(src) == 0 {
		return truncated(src)
	}
	point := c.charmap.DecodeByte(src[0])
	if point == utf8.RuneError {
		return invalid(1)
	}
	return valid(point, 1)
}

func (c *Charmap) EncodePoint(dst []byte, point rune) int {
	b, ok := c.charmap.EncodeRune(point)
	if !ok {
		b = encoding.ASCIISub
	}
	dst[0] = b
	return 1
}
