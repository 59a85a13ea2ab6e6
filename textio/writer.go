/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textio

import (
	"context"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/textencoding"
	"github.com/ARM-software/golang-textconv/transcoding"
)

// Writer converts text before writing it to an underlying writer.
// Close must be called to write the end of the text.
type Writer struct {
	transcoder *transcoding.Transcoder
	out        *OutStream
	underlying io.Writer
	closed     bool
}

// NewWriter returns a writer converting text encoded as src into dst before writing it to w.
func NewWriter(ctx context.Context, w io.Writer, dst, src textencoding.Encoding) *Writer {
	return NewWriterSize(ctx, w, dst, src, DefaultBufferSize)
}

// NewWriterSize is similar to NewWriter but allows specifying the size of the output buffer.
func NewWriterSize(ctx context.Context, w io.Writer, dst, src textencoding.Encoding, bufferSize int) *Writer {
	return &Writer{
		transcoder: transcoding.New(dst, src),
		out:        NewOutStream(ctx, w, bufferSize),
		underlying: w,
	}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		err = commonerrors.New(commonerrors.ErrClosed, "writer is closed")
		return
	}
	n, _ = w.transcoder.WriteTo(w.out, p, false)
	if n < len(p) {
		err = w.out.Err()
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	return
}

// Flush writes any converted text to the underlying writer. An incomplete character at the end of the text written so far is kept until more text arrives.
func (w *Writer) Flush() error {
	if w.closed {
		return commonerrors.New(commonerrors.ErrClosed, "writer is closed")
	}
	w.transcoder.WriteTo(w.out, nil, false)
	return w.out.Flush()
}

// Close writes the end of the text, replacing any incomplete character, and closes the underlying writer if it is an io.Closer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var result *multierror.Error
	w.transcoder.WriteTo(w.out, nil, true)
	if err := w.out.Flush(); err != nil {
		result = multierror.Append(result, err)
	}
	if closer, ok := w.underlying.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			result = multierror.Append(result, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not close writer"))
		}
	}
	return result.ErrorOrNil()
}
