/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-textconv/commonerrors"
)

func TestStringLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
	loggers.LogError("Test err")
	loggers.Log("Test1")
	loggers.LogError(commonerrors.ErrInvalid, "invalid unit")
	contents := loggers.GetLogContent()
	require.NotEmpty(t, contents)
	assert.Contains(t, contents, "Test err")
	assert.Contains(t, contents, "Test1")
	assert.Contains(t, contents, "converting input.txt from GBK to UTF-8")
	assert.Contains(t, contents, "invalid unit")
	assert.Contains(t, contents, commonerrors.ErrInvalid.Error())
	assert.Contains(t, contents, "LoggerSource2")
}
