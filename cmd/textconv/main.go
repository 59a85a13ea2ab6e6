/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-textconv/charset"
	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/config"
	"github.com/ARM-software/golang-textconv/logs"
	"github.com/ARM-software/golang-textconv/parallelisation"
	"github.com/ARM-software/golang-textconv/safeio"
	"github.com/ARM-software/golang-textconv/textio"
)

const (
	loggerSource = "textconv"
	stdinName    = "stdin"
	stdoutName   = "stdout"
)

type application struct {
	fs        afero.Fs
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	newLogger func(verbose bool) (logs.Loggers, error)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &application{
		fs:        afero.NewOsFs(),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newLogger: newZapLoggers,
	}
	err := app.run(ctx, os.Args[1:])
	cancel()
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
	default:
		_, _ = fmt.Fprintf(os.Stderr, "textconv: %v\n", err)
		os.Exit(1)
	}
}

func newZapLoggers(verbose bool) (logs.Loggers, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create logger")
	}
	return logs.NewZapLogger(logger, loggerSource)
}

func (a *application) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("textconv", pflag.ContinueOnError)
	flags.SetOutput(a.stderr)
	flags.StringP("from", "f", "", "encoding of the input text")
	flags.StringP("to", "t", "", "encoding of the output text (default UTF-8)")
	flags.StringP("input", "i", "", "file to convert (default standard input)")
	flags.StringP("output", "o", "", "file to write the converted text to (default standard output)")
	flags.Int("buffer-size", 0, fmt.Sprintf("size in bytes of the read buffer (default %v)", textio.DefaultBufferSize))
	flags.BoolP("verbose", "v", false, "log progress to standard error")
	return flags
}

func (a *application) loadConfiguration(args []string) (*Configuration, error) {
	flags := a.flagSet()
	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unexpected arguments %v", flags.Args())
	}
	session := viper.New()
	for _, binding := range []struct {
		envVar string
		flag   string
	}{
		{"TEXTCONV_FROM", "from"},
		{"TEXTCONV_TO", "to"},
		{"TEXTCONV_INPUT", "input"},
		{"TEXTCONV_OUTPUT", "output"},
		{"TEXTCONV_BUFFER_SIZE", "buffer-size"},
		{"TEXTCONV_VERBOSE", "verbose"},
	} {
		err = config.BindFlagToEnv(session, envVarPrefix, binding.envVar, flags.Lookup(binding.flag))
		if err != nil {
			return nil, err
		}
	}
	cfg := &Configuration{}
	err = config.LoadFromViper(session, envVarPrefix, cfg, DefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *application) run(ctx context.Context, args []string) (err error) {
	cfg, err := a.loadConfiguration(args)
	if err != nil {
		return
	}
	logger, err := a.loggers(ctx, cfg.Verbose)
	if err != nil {
		return
	}
	defer func() { _ = logger.Close() }()
	err = a.convert(ctx, cfg, logger)
	if err != nil {
		logger.LogError(err)
	}
	return
}

// loggers uses the logr logger carried by ctx, if any, and creates one otherwise.
func (a *application) loggers(ctx context.Context, verbose bool) (logs.Loggers, error) {
	if logger, err := logs.GetLogrLoggerFromContext(ctx); err == nil && logger.GetSink() != nil {
		return logs.NewLogrLogger(logger, loggerSource)
	}
	return a.newLogger(verbose)
}

func (a *application) convert(ctx context.Context, cfg *Configuration, logger logs.Loggers) (err error) {
	from, fromName, err := charset.LookupCharset(cfg.From)
	if err != nil {
		return
	}
	to, toName, err := charset.LookupCharset(cfg.To)
	if err != nil {
		return
	}

	var closers []io.Closer
	defer func() {
		if cErr := parallelisation.CloseAllAndCollateErrors(closers...); cErr != nil && err == nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, cErr, "could not close files")
		}
	}()

	in, inName := a.stdin, stdinName
	if cfg.Input != "" {
		f, oErr := a.fs.Open(cfg.Input)
		if oErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, oErr, "could not open %v", cfg.Input)
			return
		}
		closers = append(closers, f)
		in, inName = f, cfg.Input
	}
	out, outName := a.stdout, stdoutName
	if cfg.Output != "" {
		f, cErr := a.fs.Create(cfg.Output)
		if cErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnavailable, cErr, "could not create %v", cfg.Output)
			return
		}
		closers = append(closers, f)
		out, outName = f, cfg.Output
	}

	_ = logger.SetLogSource(inName)
	logger.Log(fmt.Sprintf("converting %v to %v from %v to %v", inName, outName, fromName, toName))
	written, err := safeio.CopyDataWithContext(ctx, textio.NewReaderSize(ctx, in, to, from, cfg.BufferSize), out)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "conversion of %v failed after %v bytes", inName, written)
		return
	}
	logger.Log(fmt.Sprintf("wrote %v bytes to %v", written, outName))
	return
}
