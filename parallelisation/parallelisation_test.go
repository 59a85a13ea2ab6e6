/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/commonerrors/errortest"
)

func TestDetermineContextError(t *testing.T) {
	require.NoError(t, DetermineContextError(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, DetermineContextError(ctx))
	cancel()
	err := DetermineContextError(ctx)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)

	cause := errors.New("no more input")
	ctx, cancelCause := context.WithCancelCause(context.Background())
	cancelCause(cause)
	err = DetermineContextError(ctx)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.True(t, commonerrors.CorrespondTo(err, cause.Error()))

	ctx, cancel = context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	errortest.AssertError(t, DetermineContextError(ctx), commonerrors.ErrTimeout)
}
