/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textio

import (
	"context"
	"io"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/safeio"
	"github.com/ARM-software/golang-textconv/textencoding"
	"github.com/ARM-software/golang-textconv/transcoding"
)

var _ transcoding.InStream = &InStream{}

// InStream is a buffered transcoding.InStream reading from an io.Reader.
// The first read error other than end of file is retained and also ends the stream.
type InStream struct {
	reader io.Reader
	buf    []byte
	start  int
	end    int
	atEOF  bool
	err    error
}

// NewInStream returns a stream reading from r through a buffer of bufferSize bytes. Reads stop when ctx is cancelled.
func NewInStream(ctx context.Context, r io.Reader, bufferSize int) *InStream {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &InStream{
		reader: safeio.NewContextualReader(ctx, r),
		buf:    make([]byte, max(bufferSize, textencoding.MaxUnitBytes)),
	}
}

func (s *InStream) TryMakeBytesAvailable(minBytes int) int {
	emptyReads := 0
	for s.end-s.start < minBytes && !s.atEOF {
		if s.start > 0 {
			s.end = copy(s.buf, s.buf[s.start:s.end])
			s.start = 0
		}
		if minBytes > len(s.buf) {
			s.grow(minBytes)
		}
		n, err := s.reader.Read(s.buf[s.end:])
		s.end += n
		switch {
		case err != nil:
			s.setError(err)
		case n > 0:
			emptyReads = 0
		default:
			emptyReads++
			if emptyReads >= maxConsecutiveEmptyReads {
				s.setError(io.ErrNoProgress)
			}
		}
	}
	return s.end - s.start
}

func (s *InStream) ViewAvailable() []byte {
	return s.buf[s.start:s.end]
}

func (s *InStream) Advance(n int) {
	if n < 0 || n > s.end-s.start {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "cannot advance by %v bytes when %v are available", n, s.end-s.start))
	}
	s.start += n
}

func (s *InStream) AtEOF() bool {
	return s.atEOF
}

// Err returns the error which interrupted reading, if any. Reaching the end of the reader is not an error.
func (s *InStream) Err() error {
	return s.err
}

func (s *InStream) setError(err error) {
	s.atEOF = true
	if err == io.EOF {
		return
	}
	s.err = safeio.ConvertIOError(err)
}

func (s *InStream) grow(size int) {
	buf := make([]byte, size)
	s.end = copy(buf, s.buf[s.start:s.end])
	s.start = 0
	s.buf = buf
}
