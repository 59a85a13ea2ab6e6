/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parallelisation provides helpers for context handling and resource release.
package parallelisation

import (
	"context"

	"github.com/ARM-software/golang-textconv/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if commonerrors.Any(err, nil) {
		return err
	}
	return commonerrors.WrapError(err, context.Cause(ctx), "")
}
