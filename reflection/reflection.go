/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reflection provides emptiness checks working across types.
package reflection

import (
	"reflect"
	"strings"
)

// IsEmpty checks whether a value should be considered empty:
// nil values and pointers, blank strings, empty collections and zero values.
// Pointers and interfaces are followed.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	return isEmptyValue(reflect.ValueOf(value))
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isEmptyValue(v.Elem())
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Chan:
		return v.IsNil() || v.Len() == 0
	case reflect.Array:
		return v.Len() == 0
	case reflect.Func:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}
