/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logrimp

import (
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-textconv/commonerrors"
)

func TestLoggerImplementations(t *testing.T) {
	zl, err := zap.NewDevelopment()
	require.NoError(t, err)
	tests := []struct {
		Logger logr.Logger
		name   string
	}{
		{
			Logger: NewNoopLogger(),
			name:   "NoOp",
		},
		{
			Logger: NewZapLogger(zl),
			name:   "Zap",
		},
		{
			Logger: NewWriterLogr(&strings.Builder{}),
			name:   "Writer",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			logger := test.Logger
			logger.WithName(faker.Name()).WithValues("foo", "bar").Info(faker.Sentence())
			logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
		},
		)
	}
}

func TestWriterLogr(t *testing.T) {
	var builder strings.Builder
	logger := NewWriterLogr(&builder)
	logger.WithName("textconv").Info("converted", "from", "GBK")
	assert.Equal(t, "textconv: \"level\"=0 \"msg\"=\"converted\" \"from\"=\"GBK\"\n", builder.String())
}

func TestNoopLoggerIsDefined(t *testing.T) {
	assert.NotNil(t, NewNoopLogger().GetSink())
	assert.Nil(t, logr.Discard().GetSink())
}
