/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package textencoding defines the per code point encoding capabilities used by the streaming transcoder,
// as well as implementations for the Unicode encodings and for the legacy encodings provided by golang.org/x/text.
//
// An Encoding decodes at most one code point from a byte slice and encodes one code point into a byte slice.
// It never fails: malformed input is reported as StatusInvalid together with a fallback code point so that
// callers always make progress.
package textencoding

import (
	"fmt"
	"unicode/utf8"
)

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-textconv/$GOPACKAGE Encoding

const (
	// MaxUnitBytes is the maximum number of bytes any supported encoding uses for a single code point.
	// EncodePoint always succeeds when given at least that much room.
	MaxUnitBytes = 4
	// ReplacementChar is the fallback code point produced when decoding malformed or truncated input.
	ReplacementChar = utf8.RuneError
)

// Status describes the outcome of decoding a code point.
type Status int

const (
	// StatusOK means a complete and valid unit was decoded.
	StatusOK Status = iota
	// StatusTruncated means there were not enough bytes to determine the unit. The result still carries
	// ReplacementChar and covers all the bytes provided, for callers which know no more input will come.
	StatusTruncated
	// StatusInvalid means the unit is malformed. The result carries ReplacementChar.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTruncated:
		return "truncated"
	case StatusInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// DecodeResult is the result of decoding a single code point.
type DecodeResult struct {
	Point    rune
	NumBytes int
	Status   Status
}

// Encoding is the capability of decoding and encoding text one code point at a time.
type Encoding interface {
	// UnitSize returns the width in bytes of the encoding's code unit e.g. 1 for UTF-8, 2 for UTF-16.
	UnitSize() int
	// DecodePoint decodes the first code point found in src. NumBytes is never greater than MaxUnitBytes.
	DecodePoint(src []byte) DecodeResult
	// EncodePoint encodes point at the start of dst and returns the number of bytes written.
	// It is guaranteed to succeed when len(dst) >= MaxUnitBytes.
	EncodePoint(dst []byte, point rune) int
}

// Named is implemented by encodings which can describe themselves.
type Named interface {
	Name() string
}

// Name returns the name of the encoding if it has one.
func Name(enc Encoding) string {
	if named, ok := enc.(Named); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", enc)
}

func truncated(src []byte) DecodeResult {
	return DecodeResult{Point: ReplacementChar, NumBytes: len(src), Status: StatusTruncated}
}

func invalid(numBytes int) DecodeResult {
	return DecodeResult{Point: ReplacementChar, NumBytes: numBytes, Status: StatusInvalid}
}

func valid(point rune, numBytes int) DecodeResult {
	return DecodeResult{Point: point, NumBytes: numBytes, Status: StatusOK}
}

// sanitise returns the code point to encode for encodings covering the whole Unicode range.
func sanitise(point rune) rune {
	if utf8.ValidRune(point) {
		return point
	}
	return ReplacementChar
}
