/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package validation

import (
	"testing"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/commonerrors/errortest"
)

func TestIsSupportedCharset(t *testing.T) {
	label := "gbk"
	tests := []struct {
		value       any
		expectedErr error
	}{
		{value: "UTF-8"},
		{value: "utf-16le"},
		{value: "Shift_JIS"},
		{value: "latin1"},
		{value: []byte("windows-1252")},
		{value: &label},
		{value: ""},
		{value: "utf-7", expectedErr: commonerrors.ErrUnsupported},
		{value: "not a charset " + faker.Word(), expectedErr: commonerrors.ErrUnsupported},
		{value: 12, expectedErr: commonerrors.ErrInvalid},
	}
	for i := range tests {
		test := tests[i]
		t.Run(faker.Sentence(), func(t *testing.T) {
			err := validation.Validate(test.value, IsSupportedCharset())
			if test.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				errortest.AssertError(t, err, test.expectedErr)
			}
		})
	}
}

func TestIsSupportedCharsetWithRequired(t *testing.T) {
	err := validation.Validate("", validation.Required, IsSupportedCharset())
	require.Error(t, err)
	assert.NoError(t, validation.Validate("GB18030", validation.Required, IsSupportedCharset()))
}

func TestIsBufferSize(t *testing.T) {
	assert.NoError(t, validation.Validate(0, IsBufferSize()))
	assert.NoError(t, validation.Validate(4096, IsBufferSize()))
	assert.NoError(t, validation.Validate(uint(1), IsBufferSize()))
	assert.NoError(t, validation.Validate(int64(MaxBufferSize), IsBufferSize()))
	errortest.AssertError(t, validation.Validate(-1, IsBufferSize()), commonerrors.ErrInvalid)
	errortest.AssertError(t, validation.Validate(MaxBufferSize+1, IsBufferSize()), commonerrors.ErrInvalid)
	errortest.AssertError(t, validation.Validate(uint64(MaxBufferSize+1), IsBufferSize()), commonerrors.ErrInvalid)
	errortest.AssertError(t, validation.Validate("4096", IsBufferSize()), commonerrors.ErrInvalid)
}
