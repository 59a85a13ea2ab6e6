/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logrimp

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewNoopLogger returns a logger discarding everything.
// Unlike logr.Discard(), it has a sink and is therefore considered defined.
func NewNoopLogger() logr.Logger {
	return funcr.New(func(string, string) {}, funcr.Options{})
}
