/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textio

import (
	"github.com/ARM-software/golang-textconv/textencoding"
	"github.com/ARM-software/golang-textconv/transcoding"
)

// Convert converts the whole of input, encoded as src, into dst.
func Convert(dst, src textencoding.Encoding, input []byte) []byte {
	out := NewMemOutStreamWithCapacity(len(input))
	transcoding.New(dst, src).WriteTo(out, input, true)
	return out.Bytes()
}
