/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package iconv

import (
	"context"
	"io"
)

type ICharsetConverter interface {
	// ConvertString converts the charset of an input string
	ConvertString(input string) (string, error)
	// ConvertStringWithContext is similar to ConvertString but can be cancelled
	ConvertStringWithContext(ctx context.Context, input string) (string, error)

	// ConvertBytes converts the charset of an input byte array
	ConvertBytes(input []byte) ([]byte, error)
	// ConvertBytesWithContext is similar to ConvertBytes but can be cancelled
	ConvertBytesWithContext(ctx context.Context, input []byte) ([]byte, error)

	// Convert converts the charset of a reader
	Convert(reader io.Reader) io.Reader
	// ConvertWithContext is similar to Convert but reading stops when the context is cancelled
	ConvertWithContext(ctx context.Context, reader io.Reader) io.Reader

	// ConvertWriter returns a writer converting the charset of what is written to it. It must be closed to write the end of the text.
	ConvertWriter(writer io.Writer) io.WriteCloser

	// String describes the conversion
	String() string
}
