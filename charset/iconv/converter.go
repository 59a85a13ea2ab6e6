/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package iconv converts text between charsets, whole or streamed.
package iconv

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/safeio"
	"github.com/ARM-software/golang-textconv/textencoding"
	"github.com/ARM-software/golang-textconv/textio"
)

// NewConverter returns a converter from one encoding to another.
// Multi-byte encodings hold conversion state: a converter based on them must not be used concurrently.
func NewConverter(fromEncoding textencoding.Encoding, toEncoding textencoding.Encoding) ICharsetConverter {
	return &Converter{
		fromEncoding: fromEncoding,
		toEncoding:   toEncoding,
	}
}

type Converter struct {
	fromEncoding textencoding.Encoding
	toEncoding   textencoding.Encoding
}

func (t *Converter) ConvertStringWithContext(ctx context.Context, input string) (transformedStr string, err error) {
	var converted strings.Builder
	writer := textio.NewWriter(ctx, &converted, t.toEncoding, t.fromEncoding)
	_, err = safeio.WriteString(ctx, writer, input)
	if err != nil {
		_ = writer.Close()
		return
	}
	err = writer.Close()
	if err != nil {
		return
	}
	transformedStr = converted.String()
	return
}

func (t *Converter) ConvertBytesWithContext(ctx context.Context, input []byte) (res []byte, err error) {
	res, err = safeio.ReadAll(ctx, t.ConvertWithContext(ctx, bytes.NewReader(input)))
	if len(input) == 0 && commonerrors.Any(err, commonerrors.ErrEmpty) {
		res = []byte{}
		err = nil
	}
	return
}

func (t *Converter) ConvertString(input string) (string, error) {
	return t.ConvertStringWithContext(context.Background(), input)
}

func (t *Converter) ConvertBytes(input []byte) ([]byte, error) {
	return t.ConvertBytesWithContext(context.Background(), input)
}

func (t *Converter) Convert(reader io.Reader) io.Reader {
	return t.ConvertWithContext(context.Background(), reader)
}

func (t *Converter) ConvertWithContext(ctx context.Context, reader io.Reader) io.Reader {
	return textio.NewReader(ctx, reader, t.toEncoding, t.fromEncoding)
}

func (t *Converter) ConvertWriter(writer io.Writer) io.WriteCloser {
	return textio.NewWriter(context.Background(), writer, t.toEncoding, t.fromEncoding)
}

func (t *Converter) String() string {
	return fmt.Sprintf("%v to %v", textencoding.Name(t.fromEncoding), textencoding.Name(t.toEncoding))
}
