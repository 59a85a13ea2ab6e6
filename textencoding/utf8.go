/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textencoding

import "unicode/utf8"

// UTF8 is the UTF-8 encoding.
var UTF8 Encoding = utf8Encoding{}

type utf8Encoding struct{}

func (utf8Encoding) Name() string { return "UTF-8" }

func (utf8Encoding) UnitSize() int { return 1 }

func (utf8Encoding) DecodePoint(src []byte) DecodeResult {
	if len(src) == 0 {
		return truncated(src)
	}
	if b := src[0]; b < utf8.RuneSelf {
		return valid(rune(b), 1)
	}
	if !utf8.FullRune(src) {
		return truncated(src)
	}
	r, size := utf8.DecodeRune(src)
	if r == utf8.RuneError && size <= 1 {
		return invalid(1)
	}
	return valid(r, size)
}

func (utf8Encoding) EncodePoint(dst []byte, point rune) int {
	return utf8.EncodeRune(dst, sanitise(point))
}
