/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textio

import (
	"context"
	"io"
	"slices"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/safeio"
	"github.com/ARM-software/golang-textconv/textencoding"
	"github.com/ARM-software/golang-textconv/transcoding"
)

var (
	_ transcoding.OutStream = &OutStream{}
	_ transcoding.OutStream = &MemOutStream{}
)

// OutStream is a buffered transcoding.OutStream writing to an io.Writer.
// Once a write fails, the stream stops accepting bytes and the error is kept.
type OutStream struct {
	writer    io.Writer
	buf       []byte
	committed int
	err       error
}

// NewOutStream returns a stream writing to w through a buffer of bufferSize bytes. Writes stop when ctx is cancelled.
func NewOutStream(ctx context.Context, w io.Writer, bufferSize int) *OutStream {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &OutStream{
		writer: safeio.ContextualWriter(ctx, w),
		buf:    make([]byte, max(bufferSize, textencoding.MaxUnitBytes)),
	}
}

func (s *OutStream) TryMakeBytesAvailable() bool {
	if s.err != nil {
		return false
	}
	if s.committed == len(s.buf) {
		return s.Flush() == nil
	}
	return true
}

func (s *OutStream) ViewAvailable() []byte {
	if s.err != nil {
		return nil
	}
	return s.buf[s.committed:]
}

func (s *OutStream) Commit(n int) {
	if n < 0 || n > len(s.buf)-s.committed {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "cannot commit %v bytes when %v are available", n, len(s.buf)-s.committed))
	}
	s.committed += n
}

// Flush writes committed bytes to the underlying writer.
func (s *OutStream) Flush() error {
	if s.err != nil {
		return s.err
	}
	if s.committed == 0 {
		return nil
	}
	n, err := s.writer.Write(s.buf[:s.committed])
	if err == nil && n < s.committed {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = commonerrors.WrapError(commonerrors.ErrUnavailable, safeio.ConvertIOError(err), "could not write converted text")
		return s.err
	}
	s.committed = 0
	return nil
}

// Err returns the error which interrupted writing, if any.
func (s *OutStream) Err() error {
	return s.err
}

// MemOutStream is a transcoding.OutStream growing in memory.
type MemOutStream struct {
	buf []byte
}

// NewMemOutStreamWithCapacity returns an empty in-memory stream with room for capacity bytes.
func NewMemOutStreamWithCapacity(capacity int) *MemOutStream {
	return &MemOutStream{buf: make([]byte, 0, capacity)}
}

func (s *MemOutStream) TryMakeBytesAvailable() bool {
	if len(s.buf) == cap(s.buf) {
		s.buf = slices.Grow(s.buf, max(len(s.buf), DefaultBufferSize))
	}
	return true
}

func (s *MemOutStream) ViewAvailable() []byte {
	return s.buf[len(s.buf):cap(s.buf)]
}

func (s *MemOutStream) Commit(n int) {
	s.buf = s.buf[:len(s.buf)+n]
}

// Bytes returns the bytes committed so far.
func (s *MemOutStream) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes committed so far.
func (s *MemOutStream) Len() int {
	return len(s.buf)
}
