/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/commonerrors/errortest"
)

func Test_processMapStructureString(t *testing.T) {
	tests := []struct {
		mapstructureTag      string
		expectedProcessedTag string
	}{
		{},
		{
			mapstructureTag: "         ",
		},
		{
			mapstructureTag: "     -    ",
		},
		{
			mapstructureTag: "    , omitzero      ",
		},
		{
			mapstructureTag: "  ,omitempty  , omitzero    , SQUASH  ",
		},
		{
			mapstructureTag:      "test  ,omitempty  , omitzero    , squash  ",
			expectedProcessedTag: "test",
		},
		{
			mapstructureTag:      "buffer_size",
			expectedProcessedTag: "buffer_size",
		},
		{
			mapstructureTag:      "   buffer_size   ",
			expectedProcessedTag: "buffer_size",
		},
		{
			mapstructureTag:      "   buffer_size ,remain  ",
			expectedProcessedTag: "buffer_size",
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.mapstructureTag, func(t *testing.T) {
			assert.Equal(t, test.expectedProcessedTag, processMapStructureString(test.mapstructureTag))
		})
	}
}

func TestValidateEmbedded(t *testing.T) {
	cfg := DefaultConversionConfigurationTest()
	err := ValidateEmbedded(cfg)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	var vErr IValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "SOURCE_CHARSET", vErr.GetMapStructurePath())
	assert.Equal(t, "Source->charset", vErr.GetTreePath())

	cfg.Source.Charset = "EUC-JP"
	assert.NoError(t, ValidateEmbedded(cfg))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil, nil))
	prefix := "textconv"
	reason := faker.Sentence()
	err := WrapFieldValidationError("From", nil, nil, errors.New(reason))
	require.NotNil(t, err)
	err = WrapValidationError(&prefix, err)
	require.NotNil(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Equal(t, reason, err.GetReason())
	assert.Equal(t, "From", err.GetTreePath())
	assert.Empty(t, err.GetMapStructurePath())
	assert.Contains(t, err.Error(), reason)
	assert.Equal(t, err.Error(), err.String())

	mapstructure := "from"
	err = WrapFieldValidationError("From", &mapstructure, nil, errors.New(reason))
	err = WrapValidationError(&prefix, err)
	assert.Equal(t, "TEXTCONV_FROM", err.GetMapStructurePath())
}
