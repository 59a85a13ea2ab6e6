/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safeio

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/commonerrors/errortest"
)

func TestReadAll(t *testing.T) {
	var buf bytes.Buffer
	text := faker.Sentence()
	n, err := WriteString(context.Background(), &buf, text)
	require.NoError(t, err)
	require.NotZero(t, n)
	assert.Equal(t, len(text), n)
	assert.Equal(t, text, buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rbytes, err := ReadAll(ctx, &buf)
	require.NoError(t, err)
	assert.NotEmpty(t, rbytes)
	assert.Equal(t, text, string(rbytes))

	buf.Reset()
	n, err = WriteString(context.Background(), &buf, text)
	require.NoError(t, err)
	require.NotZero(t, n)
	assert.Equal(t, len(text), n)

	cancel()
	rbytes, err = ReadAll(ctx, &buf)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.Empty(t, rbytes)
}

func TestReadAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	rbytes, err := ReadAll(context.Background(), &buf)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
	assert.Empty(t, rbytes)
}

func TestReadAtMost(t *testing.T) {
	var buf bytes.Buffer
	text := faker.Sentence()
	n, err := WriteString(context.Background(), &buf, text)
	require.NoError(t, err)
	require.NotZero(t, n)
	assert.Equal(t, len(text), n)
	assert.Equal(t, text, buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rbytes, err := ReadAtMost(ctx, &buf, int64(len(text)), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, rbytes)
	assert.Equal(t, text, string(rbytes))

	buf.Reset()
	n, err = WriteString(context.Background(), &buf, text)
	require.NoError(t, err)
	require.NotZero(t, n)
	assert.Equal(t, len(text), n)

	rbytes, err = ReadAtMost(ctx, &buf, int64(len(text)-2), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, rbytes)
	assert.Equal(t, len(text)-2, len(rbytes))

	buf.Reset()
	n, err = WriteString(context.Background(), &buf, text)
	require.NoError(t, err)
	require.NotZero(t, n)
	assert.Equal(t, len(text), n)

	cancel()
	rbytes, err = ReadAtMost(ctx, &buf, int64(len(text)), -1)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.Empty(t, rbytes)
}

func TestNewContextualReader(t *testing.T) {
	text := faker.Sentence()
	ctx, cancel := context.WithCancel(context.TODO())
	result, err := io.ReadAll(NewContextualReader(ctx, strings.NewReader(text)))
	require.NoError(t, err)
	assert.Equal(t, text, string(result))

	cancel()
	result, err = io.ReadAll(NewContextualReader(ctx, strings.NewReader(text)))
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.Empty(t, result)
}

func TestReadAtMostNothing(t *testing.T) {
	rbytes, err := ReadAtMost(context.Background(), strings.NewReader(faker.Paragraph()), 0, -1)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
	assert.Empty(t, rbytes)
}
