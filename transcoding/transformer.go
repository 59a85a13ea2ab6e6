/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transcoding

import "golang.org/x/text/transform"

var _ transform.Transformer = &Transcoder{}

// Transform implements transform.Transformer so that a Transcoder can be used with transform.NewReader,
// transform.NewWriter or transform.Chain. Source bytes of a torn unit are consumed and kept internally.
func (t *Transcoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, _ = t.Convert(dst, src, atEOF)
	if t.Pending() || nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return
}
