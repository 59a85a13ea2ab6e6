/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/reflection"
)

// CloseAll calls Close on all io.Closer implementations passed as arguments, in order, and returns the first error encountered.
// All closers are closed whatever the outcome.
func CloseAll(cs ...io.Closer) (err error) {
	for i := range cs {
		if cErr := closeOne(cs[i]); cErr != nil && err == nil {
			err = cErr
		}
	}
	return
}

// CloseAllAndCollateErrors calls Close on all io.Closer implementations passed as arguments and returns all the errors encountered.
func CloseAllAndCollateErrors(cs ...io.Closer) error {
	var result *multierror.Error
	for i := range cs {
		if err := closeOne(cs[i]); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func closeOne(c io.Closer) error {
	if reflection.IsEmpty(c) {
		return commonerrors.New(commonerrors.ErrUndefined, "closer object is undefined")
	}
	return c.Close()
}
