/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package charset

import (
	"strings"
	"sync"

	"github.com/ARM-software/golang-textconv/commonerrors"
)

var (
	mapping     charsetEncodingMapping
	mappingOnce sync.Once
)

type ICharsetEncodingMapping interface {
	GetCanonicalName(alias string) (string, error)
}

type charsetEncodingMapping struct {
	mapping map[string]string
}

func (m *charsetEncodingMapping) GetCanonicalName(alias string) (name string, err error) {
	name, found := m.mapping[normaliseLabel(alias)]
	if !found {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "charset alias [%v] was not found in the list of supported Charsets", alias)
	}
	return
}

func normaliseLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func initialiseMapping() {
	mappingOnce.Do(func() {
		// Aliases used by iconv, ICU and various tools which neither the WHATWG index
		// (https://encoding.spec.whatwg.org/encodings.json) nor the IANA index
		// (https://www.iana.org/assignments/character-sets/character-sets.xhtml) know about.
		mapping = charsetEncodingMapping{mapping: map[string]string{
			"utf_8":   "UTF-8",
			"utf-8n":  "UTF-8",
			"cp65001": "UTF-8",

			"utf16le":   "UTF-16LE",
			"utf_16le":  "UTF-16LE",
			"utf-16-le": "UTF-16LE",
			"cp1200":    "UTF-16LE",
			"utf16be":   "UTF-16BE",
			"utf_16be":  "UTF-16BE",
			"utf-16-be": "UTF-16BE",
			"cp1201":    "UTF-16BE",

			"utf32le":   "UTF-32LE",
			"utf_32le":  "UTF-32LE",
			"utf-32-le": "UTF-32LE",
			"cp12000":   "UTF-32LE",
			"utf32be":   "UTF-32BE",
			"utf_32be":  "UTF-32BE",
			"utf-32-be": "UTF-32BE",
			"cp12001":   "UTF-32BE",

			"iso8859-1":  "ISO-8859-1",
			"iso8859_1":  "ISO-8859-1",
			"iso_8859_1": "ISO-8859-1",
			"latin-1":    "ISO-8859-1",
			"8859-1":     "ISO-8859-1",
			"cp28591":    "ISO-8859-1",

			"iso8859-2":  "ISO-8859-2",
			"iso_8859_2": "ISO-8859-2",
			"latin-2":    "ISO-8859-2",
			"iso8859-15": "ISO-8859-15",
			"latin-9":    "ISO-8859-15",

			"ms-ansi":   "windows-1252",
			"cp-1252":   "windows-1252",
			"win-1252":  "windows-1252",
			"ms-ee":     "windows-1250",
			"cp-1250":   "windows-1250",
			"ms-cyrl":   "windows-1251",
			"cp-1251":   "windows-1251",
			"cp437":     "IBM437",
			"cp-437":    "IBM437",
			"cp850":     "IBM850",
			"cp-850":    "IBM850",
			"cp866":     "IBM866",
			"koi8r":     "KOI8-R",
			"koi8u":     "KOI8-U",
			"macroman":  "macintosh",
			"mac-roman": "macintosh",

			"cp936":       "GBK",
			"ms936":       "GBK",
			"windows-936": "GBK",
			"gb-18030":    "GB18030",
			"cp54936":     "GB18030",
			"cp950":       "Big5",
			"big-5":       "Big5",
			"big_5":       "Big5",
			"cp932":       "Shift_JIS",
			"shift-jis":   "Shift_JIS",
			"shiftjis":    "Shift_JIS",
			"sjis-open":   "Shift_JIS",
			"eucjp":       "EUC-JP",
			"euc_jp":      "EUC-JP",
			"ujis":        "EUC-JP",
			"euckr":       "EUC-KR",
			"euc_kr":      "EUC-KR",
			"cp949":       "EUC-KR",
			"uhc":         "EUC-KR",
		},
		}
	})
}

func getEncodingMapping() ICharsetEncodingMapping {
	initialiseMapping()
	return &mapping
}
