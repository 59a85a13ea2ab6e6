/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"strings"

	"golang.org/x/text/encoding"

	"github.com/ARM-software/golang-textconv/commonerrors"
)

var (
	// unsupportedCharsets lists valid charsets which golang.org/x/text does not provide but does not report as such.
	unsupportedCharsets = []string{"UTF-7", "UTF-7-IMAP", "csUTF7", "UNICODE-1-1-UTF-7"}
	// statefulCharsets lists charsets whose encoding depends on shift states or byte order marks
	// and which therefore cannot be transcoded one code point at a time.
	statefulCharsets = []string{"iso-2022-jp", "iso-2022-kr", "hz-gb-2312", "replacement", "utf-16", "utf-32"}
)

// GetUnsupported gets valid IANA charset encoding we know are not supported by golang but not reported as such.
func GetUnsupported(name string) (encoding.Encoding, error) {
	for i := range unsupportedCharsets {
		if strings.EqualFold(unsupportedCharsets[i], strings.TrimSpace(name)) {
			return nil, nil
		}
	}
	return nil, commonerrors.New(commonerrors.ErrInvalid, "invalid encoding name")
}

func isStateful(canonicalName string) bool {
	for i := range statefulCharsets {
		if strings.EqualFold(statefulCharsets[i], canonicalName) {
			return true
		}
	}
	return false
}
