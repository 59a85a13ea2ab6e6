/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textencoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// maxDecodedBytes holds the UTF-8 output of any single unit, combining sequences included.
const maxDecodedBytes = 4 * utf8.UTFMax

// MultiByte adapts a stateless multi-byte encoding from golang.org/x/text (e.g. GBK, Big5, Shift_JIS, EUC-KR)
// to a per code point Encoding. It owns a decoder and an encoder and is therefore not safe for concurrent use:
// create one per Transcoder.
//
// Stateful encodings such as ISO-2022-JP cannot be expressed one code point at a time and must not be used.
type MultiByte struct {
	name    string
	decoder *encoding.Decoder
	encoder *encoding.Encoder
}

// NewMultiByte returns an Encoding based on the x/text encoding enc.
func NewMultiByte(name string, enc encoding.Encoding) *MultiByte {
	return &MultiByte{
		name:    name,
		decoder: enc.NewDecoder(),
		encoder: encoding.ReplaceUnsupported(enc.NewEncoder()),
	}
}

func (m *MultiByte) Name() string { return m.name }

func (m *MultiByte) UnitSize() int { return 1 }

// DecodePoint returns the first code point of the unit at the start of src. A few units decode to a base character
// followed by a combining mark (e.g. Big5-HKSCS 0x88 0x62); only the base character is kept but the whole unit is
// consumed.
func (m *MultiByte) DecodePoint(src []byte) DecodeResult {
	var decoded [maxDecodedBytes]byte
	limit := min(len(src), MaxUnitBytes)
	// Feed the decoder one more byte at a time until it produces something: the first output then stems from
	// the shortest prefix forming a unit.
	for n := 1; n <= limit; n++ {
		nDst, nSrc, err := m.decode(decoded[:], src[:n])
		if nDst == 0 {
			if err == transform.ErrShortSrc {
				continue
			}
			return invalid(1)
		}
		point, _ := utf8.DecodeRune(decoded[:nDst])
		if point == utf8.RuneError {
			return invalid(nSrc)
		}
		return valid(point, nSrc)
	}
	if len(src) < MaxUnitBytes {
		return truncated(src)
	}
	return invalid(1)
}

func (m *MultiByte) decode(dst, src []byte) (nDst, nSrc int, err error) {
	m.decoder.Reset()
	return m.decoder.Transform(dst, src, false)
}

func (m *MultiByte) EncodePoint(dst []byte, point rune) int {
	var encoded [utf8.UTFMax]byte
	n := utf8.EncodeRune(encoded[:], point)
	m.encoder.Reset()
	nDst, _, _ := m.encoder.Transform(dst, encoded[:n], true)
	if nDst == 0 {
		dst[0] = encoding.ASCIISub
		return 1
	}
	return nDst
}
