/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-textconv/commonerrors"
)

func testLog(t *testing.T, loggers Loggers) {
	t.Helper()
	err := loggers.Check()
	require.NoError(t, err)
	defer func() { _ = loggers.Close() }()

	err = loggers.SetLogSource("source1")
	require.NoError(t, err)
	err = loggers.SetLoggerSource("LoggerSource1")
	require.NoError(t, err)

	loggers.Log("converting input.txt from GBK to UTF-8")
	loggers.Log("Test output2")
	loggers.Log("\n")
	loggers.LogError("\n")
	err = loggers.SetLogSource("source2")
	require.NoError(t, err)

	loggers.Log("Test output3")
	loggers.LogError("Test err1")
	err = loggers.SetLoggerSource("LoggerSource2")
	require.NoError(t, err)

	loggers.LogError("Test err2")
	loggers.LogError(commonerrors.ErrCancelled)
	loggers.LogError(nil)
	loggers.LogError(commonerrors.ErrUnexpected, "some error")
	loggers.LogError("some error", commonerrors.ErrUnexpected)
	loggers.LogError(nil, "no error")

	require.Error(t, loggers.SetLogSource(" "))
	require.Error(t, loggers.SetLoggerSource(""))
	err = loggers.Close()
	require.NoError(t, err)
}
