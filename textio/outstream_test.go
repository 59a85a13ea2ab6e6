/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package textio

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/commonerrors/errortest"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

func fill(t *testing.T, out interface {
	ViewAvailable() []byte
	Commit(n int)
}, text string) {
	t.Helper()
	n := copy(out.ViewAvailable(), text)
	require.Equal(t, len(text), n)
	out.Commit(n)
}

func TestOutStream(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutStream(context.Background(), &buf, 4)
	require.True(t, out.TryMakeBytesAvailable())
	assert.Len(t, out.ViewAvailable(), 4)
	fill(t, out, "abc")
	assert.Len(t, out.ViewAvailable(), 1)
	require.True(t, out.TryMakeBytesAvailable())
	fill(t, out, "d")
	assert.Empty(t, buf.String())

	require.True(t, out.TryMakeBytesAvailable())
	assert.Equal(t, "abcd", buf.String())
	assert.Len(t, out.ViewAvailable(), 4)
	fill(t, out, "e")
	require.NoError(t, out.Flush())
	assert.Equal(t, "abcde", buf.String())
	require.NoError(t, out.Flush())
	assert.Equal(t, "abcde", buf.String())
	assert.NoError(t, out.Err())
}

func TestOutStream_WriteError(t *testing.T) {
	writeErr := errors.New("disk full")
	out := NewOutStream(context.Background(), failingWriter{err: writeErr}, 4)
	require.True(t, out.TryMakeBytesAvailable())
	fill(t, out, "abcd")
	assert.False(t, out.TryMakeBytesAvailable())
	errortest.AssertError(t, out.Err(), commonerrors.ErrUnavailable)
	errortest.AssertErrorDescription(t, out.Flush(), writeErr.Error())
	assert.Empty(t, out.ViewAvailable())
	assert.False(t, out.TryMakeBytesAvailable())
}

func TestOutStream_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	out := NewOutStream(ctx, &buf, 0)
	fill(t, out, "abcd")
	cancel()
	err := out.Flush()
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.Empty(t, buf.String())
}

func TestOutStream_CommitTooMuch(t *testing.T) {
	out := NewOutStream(context.Background(), &bytes.Buffer{}, 4)
	assert.Panics(t, func() { out.Commit(5) })
}

func TestMemOutStream(t *testing.T) {
	out := NewMemOutStreamWithCapacity(0)
	assert.Empty(t, out.ViewAvailable())
	require.True(t, out.TryMakeBytesAvailable())
	assert.NotEmpty(t, out.ViewAvailable())
	fill(t, out, "abc")
	assert.Equal(t, "abc", string(out.Bytes()))

	out = NewMemOutStreamWithCapacity(2)
	require.True(t, out.TryMakeBytesAvailable())
	fill(t, out, "ab")
	assert.Empty(t, out.ViewAvailable())
	require.True(t, out.TryMakeBytesAvailable())
	fill(t, out, "cd")
	assert.Equal(t, "abcd", string(out.Bytes()))
	assert.Equal(t, 4, out.Len())
}
