/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types returned across the module.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TypeReasonErrorSeparator separates the error type from its reason in error descriptions.
const TypeReasonErrorSeparator = ':'

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnavailable    = errors.New("unavailable")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrCancelled      = errors.New("cancelled")
	ErrEmpty          = errors.New("empty")
	ErrTooLarge       = errors.New("too large")
	ErrEOF            = errors.New("end of file")
	ErrClosed         = errors.New("closed")
	ErrUnexpected     = errors.New("unexpected")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. The comparison is case-insensitive.
func CorrespondTo(target error, description ...string) bool {
	if IsEmpty(target) {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is nil or a typed nil.
func IsEmpty(err any) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// New creates a new error of the given type with a reason.
func New(errorType error, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errorType
	}
	return fmt.Errorf("%w%v %v", errorType, string(TypeReasonErrorSeparator), reason)
}

// Newf is similar to New but allows formatting the reason.
func Newf(errorType error, msgFormat string, args ...any) error {
	return New(errorType, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. However, if the original error has to do with a context
// cancellation or timeout, it is the context error which is returned.
func WrapError(targetErr, originalErr error, message string) error {
	if originalErr == nil {
		return New(targetErr, message)
	}
	tErr := targetErr
	origErr := ConvertContextError(originalErr)
	if Any(origErr, ErrTimeout, ErrCancelled) {
		tErr = origErr
	}
	if tErr == nil {
		tErr = ErrUnknown
	}
	cleansedMessage := strings.TrimSpace(message)
	if cleansedMessage == "" {
		if Any(tErr, origErr) {
			return origErr
		}
		return fmt.Errorf("%w%v %v", tErr, string(TypeReasonErrorSeparator), origErr.Error())
	}
	return fmt.Errorf("%w%v %v%v %v", tErr, string(TypeReasonErrorSeparator), cleansedMessage, string(TypeReasonErrorSeparator), origErr.Error())
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetErr, originalErr error, msgFormat string, args ...any) error {
	return WrapError(targetErr, originalErr, fmt.Sprintf(msgFormat, args...))
}

// ConvertContextError converts a context error into common errors.
func ConvertContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case Any(err, ErrTimeout, ErrCancelled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%v %v", ErrTimeout, string(TypeReasonErrorSeparator), err.Error())
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w%v %v", ErrCancelled, string(TypeReasonErrorSeparator), err.Error())
	default:
		return err
	}
}

// ErrFromContext returns the context error converted into a common error, or nil.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ConvertContextError(ctx.Err())
}
