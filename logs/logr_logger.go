/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/reflection"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	root         logr.Logger
	logger       logr.Logger
	loggerSource string
	logSource    string
	closeFunc    func() error
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

func (l *logrLogger) Check() error {
	if l.logger.GetSink() == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.logSource = source
	l.rebuild()
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.loggerSource = source
	l.rebuild()
	return nil
}

func (l *logrLogger) rebuild() {
	logger := l.root
	if l.loggerSource != "" {
		logger = logger.WithName(l.loggerSource).WithValues(KeyLoggerSource, l.loggerSource)
	}
	if l.logSource != "" {
		logger = logger.WithValues(KeyLogSource, l.logSource)
	}
	l.logger = logger
}

func (l *logrLogger) Log(output ...interface{}) {
	l.logger.Info(toMessage(output...))
}

func (l *logrLogger) LogError(err ...interface{}) {
	var cause error
	var others []interface{}
	for i := range err {
		if e, ok := err[i].(error); ok && cause == nil {
			cause = e
			continue
		}
		if err[i] != nil {
			others = append(others, err[i])
		}
	}
	l.logger.Error(cause, toMessage(others...))
}

func toMessage(args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintln(args...))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (loggers Loggers, err error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but also allows specifying what to do on Close.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	if logrImpl.GetSink() == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	loggers = &logrLogger{root: logrImpl, logger: logrImpl, closeFunc: closeFunc}
	err = loggers.SetLoggerSource(loggerSource)
	return
}

// GetLogrLoggerFromContext returns the logr logger stored in a context.
func GetLogrLoggerFromContext(ctx context.Context) (logr.Logger, error) {
	logger, err := logr.FromContext(ctx)
	if err != nil {
		return logr.Logger{}, commonerrors.WrapError(commonerrors.ErrNoLogger, err, "")
	}
	return logger, nil
}
