/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/commonerrors/errortest"
	"github.com/ARM-software/golang-textconv/logs"
	"github.com/ARM-software/golang-textconv/logs/logrimp"
)

type testApplication struct {
	*application
	stdout  *bytes.Buffer
	loggers *logs.StringLoggers
}

func newTestApplication(t *testing.T, stdin io.Reader) *testApplication {
	t.Helper()
	loggers, err := logs.NewStringLogger(loggerSource)
	require.NoError(t, err)
	stdout := &bytes.Buffer{}
	return &testApplication{
		application: &application{
			fs:     afero.NewMemMapFs(),
			stdin:  stdin,
			stdout: stdout,
			stderr: io.Discard,
			newLogger: func(bool) (logs.Loggers, error) {
				return loggers, nil
			},
		},
		stdout:  stdout,
		loggers: loggers,
	}
}

func TestConvertFile(t *testing.T) {
	defer goleak.VerifyNone(t)
	text := "你好，世界 " + faker.Sentence()
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(text)
	require.NoError(t, err)
	app := newTestApplication(t, strings.NewReader(""))
	require.NoError(t, afero.WriteFile(app.fs, "in.txt", []byte(encoded), 0o644))

	err = app.run(context.Background(), []string{"--from", "gbk", "--to", "utf-8", "--input", "in.txt", "--output", "out.txt", "--verbose"})
	require.NoError(t, err)
	converted, err := afero.ReadFile(app.fs, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, text, string(converted))
	assert.Empty(t, app.stdout.String())
	logged := app.loggers.GetLogContent()
	assert.Contains(t, logged, "converting in.txt to out.txt")
	assert.Contains(t, logged, "in.txt")
}

func TestConvertStandardStreams(t *testing.T) {
	defer goleak.VerifyNone(t)
	app := newTestApplication(t, strings.NewReader("caf\xe9 cr\xe8me"))
	err := app.run(context.Background(), []string{"-f", "latin1", "-t", "UTF-8"})
	require.NoError(t, err)
	assert.Equal(t, "café crème", app.stdout.String())
}

func TestConvertLogsToContextLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	var logged strings.Builder
	ctx := logr.NewContext(context.Background(), logrimp.NewWriterLogr(&logged))
	app := newTestApplication(t, strings.NewReader("caf\xe9"))
	err := app.run(ctx, []string{"--from", "latin1"})
	require.NoError(t, err)
	assert.Equal(t, "café", app.stdout.String())
	assert.Contains(t, logged.String(), "converting stdin to stdout")
	assert.Empty(t, app.loggers.GetLogContent())
}

func TestConvertWithSmallBuffer(t *testing.T) {
	defer goleak.VerifyNone(t)
	text := "héllo 😀 " + faker.Paragraph()
	expected, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(text)
	require.NoError(t, err)
	app := newTestApplication(t, strings.NewReader(text))
	err = app.run(context.Background(), []string{"--from", "utf-8", "--to", "utf-16le", "--buffer-size", "1"})
	require.NoError(t, err)
	assert.Equal(t, expected, app.stdout.String())
}

func TestConvertReplacesMalformedInput(t *testing.T) {
	defer goleak.VerifyNone(t)
	app := newTestApplication(t, strings.NewReader("abc\xffdef\xe2\x82"))
	err := app.run(context.Background(), []string{"--from", "utf-8", "--to", "utf-8"})
	require.NoError(t, err)
	assert.Equal(t, "abc�def�", app.stdout.String())
}

func TestConvertUnmappableCharacter(t *testing.T) {
	defer goleak.VerifyNone(t)
	app := newTestApplication(t, strings.NewReader("a€b"))
	err := app.run(context.Background(), []string{"--from", "utf-8", "--to", "cp437"})
	require.NoError(t, err)
	assert.Equal(t, "a\x1ab", app.stdout.String())
}

func TestConvertFromEnvironment(t *testing.T) {
	defer goleak.VerifyNone(t)
	text := "こんにちは"
	encoded, err := japanese.ShiftJIS.NewEncoder().String(text)
	require.NoError(t, err)
	t.Setenv("TEXTCONV_FROM", "Shift_JIS")
	t.Setenv("TEXTCONV_TO", "windows-1252")
	app := newTestApplication(t, strings.NewReader(encoded))
	// flags take precedence over the environment
	err = app.run(context.Background(), []string{"--to", "utf-8"})
	require.NoError(t, err)
	assert.Equal(t, text, app.stdout.String())
}

func TestConvertToSingleByteCharset(t *testing.T) {
	defer goleak.VerifyNone(t)
	text := "Grüße"
	expected, err := charmap.CodePage437.NewEncoder().String(text)
	require.NoError(t, err)
	app := newTestApplication(t, strings.NewReader(text))
	err = app.run(context.Background(), []string{"--from", "utf-8", "--to", "cp437"})
	require.NoError(t, err)
	assert.Equal(t, expected, app.stdout.String())
}

func TestConvertInvalidConfiguration(t *testing.T) {
	tests := []struct {
		args        []string
		expectedErr error
		description string
	}{
		{
			args:        []string{},
			expectedErr: commonerrors.ErrInvalid,
			description: "TEXTCONV_FROM",
		},
		{
			args:        []string{"--from", "utf-7"},
			expectedErr: commonerrors.ErrInvalid,
			description: "utf-7",
		},
		{
			args:        []string{"--from", "utf-8", "--to", faker.Word() + "-unknown"},
			expectedErr: commonerrors.ErrInvalid,
			description: "TEXTCONV_TO",
		},
		{
			args:        []string{"--from", "utf-8", "--buffer-size", "-5"},
			expectedErr: commonerrors.ErrInvalid,
			description: "TEXTCONV_BUFFER_SIZE",
		},
		{
			args:        []string{"--from", "utf-8", "extra"},
			expectedErr: commonerrors.ErrInvalid,
			description: "extra",
		},
		{
			args:        []string{"--from", "utf-8", "--input", "missing.txt"},
			expectedErr: commonerrors.ErrNotFound,
			description: "missing.txt",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			app := newTestApplication(t, strings.NewReader(faker.Sentence()))
			err := app.run(context.Background(), test.args)
			require.Error(t, err)
			errortest.AssertError(t, err, test.expectedErr)
			errortest.AssertErrorDescription(t, err, test.description)
			assert.Empty(t, app.stdout.String())
		})
	}
}

func TestConvertOutputUnavailable(t *testing.T) {
	app := newTestApplication(t, strings.NewReader(faker.Sentence()))
	app.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := app.run(context.Background(), []string{"--from", "utf-8", "--output", "out.txt"})
	errortest.AssertError(t, err, commonerrors.ErrUnavailable)
	assert.Contains(t, app.loggers.GetLogContent(), "out.txt")
}

func TestConvertCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app := newTestApplication(t, strings.NewReader(faker.Paragraph()))
	err := app.run(ctx, []string{"--from", "utf-8"})
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}

func TestHelp(t *testing.T) {
	app := newTestApplication(t, strings.NewReader(""))
	err := app.run(context.Background(), []string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
