/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textio

import (
	"context"
	"io"

	"github.com/ARM-software/golang-textconv/textencoding"
	"github.com/ARM-software/golang-textconv/transcoding"
)

// Reader converts text read from an underlying reader.
type Reader struct {
	transcoder *transcoding.Transcoder
	in         *InStream
}

// NewReader returns a reader converting text read from r, encoded as src, into dst.
func NewReader(ctx context.Context, r io.Reader, dst, src textencoding.Encoding) *Reader {
	return NewReaderSize(ctx, r, dst, src, DefaultBufferSize)
}

// NewReaderSize is similar to NewReader but allows specifying the size of the input buffer.
func NewReaderSize(ctx context.Context, r io.Reader, dst, src textencoding.Encoding, bufferSize int) *Reader {
	return &Reader{
		transcoder: transcoding.New(dst, src),
		in:         NewInStream(ctx, r, bufferSize),
	}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}
	n = r.transcoder.ReadFrom(r.in, p)
	if n > 0 {
		return
	}
	err = r.in.Err()
	if err == nil {
		err = io.EOF
	}
	return
}
