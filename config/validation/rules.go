/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validation provides ozzo-validation rules for conversion settings.
package validation

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-textconv/charset"
	"github.com/ARM-software/golang-textconv/commonerrors"
)

// MaxBufferSize is the largest stream buffer accepted by IsBufferSize.
const MaxBufferSize = 64 * 1024 * 1024

// IsSupportedCharset checks that a value is a label the charset package can resolve to an encoding.
// Empty values are considered valid so that the rule can be combined with validation.Required.
func IsSupportedCharset() validation.Rule {
	return validation.By(func(vRaw any) error {
		label, err := toString(vRaw)
		if err != nil {
			return err
		}
		if label == "" {
			return nil
		}
		if !charset.IsSupported(label) {
			return commonerrors.Newf(commonerrors.ErrUnsupported, "charset %q is not supported", label)
		}
		return nil
	})
}

// IsBufferSize checks that a buffer size is either unset (zero) or within sensible bounds.
func IsBufferSize() validation.Rule {
	return validation.By(func(vRaw any) error {
		val := reflect.ValueOf(vRaw)
		var size int64
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			size = val.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if val.Uint() > MaxBufferSize {
				return commonerrors.Newf(commonerrors.ErrInvalid, "buffer size must be at most %v", MaxBufferSize)
			}
			size = int64(val.Uint()) //nolint:gosec // bounded above
		default:
			return commonerrors.Newf(commonerrors.ErrInvalid, "unsupported type for buffer size validation: %T", vRaw)
		}
		if size < 0 || size > MaxBufferSize {
			return commonerrors.Newf(commonerrors.ErrInvalid, "buffer size must be between 0 and %v", MaxBufferSize)
		}
		return nil
	})
}

func toString(vRaw any) (string, error) {
	val := reflect.ValueOf(vRaw)
	switch val.Kind() {
	case reflect.String:
		return val.String(), nil
	case reflect.Slice:
		if b, ok := vRaw.([]byte); ok {
			return string(b), nil
		}
	case reflect.Ptr:
		if val.IsNil() {
			return "", nil
		}
		return toString(val.Elem().Interface())
	default:
	}
	return "", commonerrors.Newf(commonerrors.ErrInvalid, "unsupported type for charset validation: %T", vRaw)
}
