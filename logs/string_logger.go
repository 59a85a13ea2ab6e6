/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"strings"
	"sync"

	"github.com/ARM-software/golang-textconv/logs/logrimp"
)

type StringWriter struct {
	mu   sync.RWMutex
	Logs strings.Builder
}

func (w *StringWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Logs.Write(p)
}

func (w *StringWriter) GetFullContent() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.Logs.String()
}

// StringLoggers keeps everything logged in memory.
type StringLoggers struct {
	Loggers
	LogWriter *StringWriter
}

func (l *StringLoggers) GetLogContent() string {
	return l.LogWriter.GetFullContent()
}

// NewStringLogger returns a logger which writes to a string.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	writer := &StringWriter{}
	logger, err := NewLogrLogger(logrimp.NewWriterLogr(writer), loggerSource)
	if err != nil {
		return
	}
	loggers = &StringLoggers{Loggers: logger, LogWriter: writer}
	return
}
