/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safeio provides functions similar to utilities in built-in io package but with safety nets.
package safeio

import (
	"context"
	"io"

	"github.com/ARM-software/golang-textconv/parallelisation"
)

// CopyDataWithContext copies from src to dst similarly to io.Copy but with context control to stop when asked.
func CopyDataWithContext(ctx context.Context, src io.Reader, dst io.Writer) (copied int64, err error) {
	err = parallelisation.DetermineContextError(ctx)
	if err != nil {
		return
	}
	copied, err = io.Copy(ContextualWriter(ctx, dst), NewContextualReader(ctx, src))
	err = ConvertIOError(err)
	return
}
