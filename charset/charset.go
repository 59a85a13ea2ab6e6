/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package charset resolves charset labels into encodings the transcoder can stream through, and provides
// iconv-like helpers on top of them.
package charset

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ARM-software/golang-textconv/charset/iconv"
	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/textencoding"
)

// Unicode encodings implemented natively. Labels are expected to be normalised.
var nativeEncodings = map[string]textencoding.Encoding{
	"utf-16le": textencoding.UTF16LE,
	"utf-16be": textencoding.UTF16BE,
	"utf-32le": textencoding.UTF32LE,
	"utf-32be": textencoding.UTF32BE,
}

// Stateless multi-byte encodings which can be decoded one code point at a time.
var multiByteEncodings = []string{"gbk", "gb18030", "big5", "shift_jis", "euc-jp", "euc-kr"}

// LookupCharset returns the encoding with the specified charsetLabel, and its canonical
// name. Matching is case-insensitive and ignores
// leading and trailing whitespace.
// A new encoding instance is returned on every call as some encodings hold conversion state.
//
// Labels are first resolved as in the WHATWG Encoding standard used by browsers. As a result, "latin1",
// "iso-8859-1" and "us-ascii" all resolve to windows-1252, where bytes 0x80 to 0x9F decode to characters
// such as € rather than to C1 control codes. Use textencoding.Latin1 or textencoding.ASCII directly for the
// strict encodings.
func LookupCharset(charsetLabel string) (charsetEnc textencoding.Encoding, charsetName string, err error) {
	if enc, name, found := findNativeEncoding(charsetLabel); found {
		charsetEnc = enc
		charsetName = name
		return
	}
	xEnc, err := findCharsetEncoding(charsetLabel)
	if err != nil {
		if commonerrors.Any(err, commonerrors.ErrUnsupported) {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnsupported, err, "charset [%v] is not supported by go", charsetLabel)
		} else {
			err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "charset [%v] is invalid", charsetLabel)
		}
		return
	}
	name, err := canonicalName(xEnc)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnsupported, err, "charset [%v] has no canonical name", charsetLabel)
		return
	}
	charsetEnc, err = newEncoding(xEnc, name)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnsupported, err, "charset [%v] cannot be streamed", charsetLabel)
		return
	}
	charsetName = name
	return
}

func findNativeEncoding(charsetLabel string) (enc textencoding.Encoding, name string, found bool) {
	label := normaliseLabel(charsetLabel)
	enc, found = nativeEncodings[label]
	if !found {
		alias, err := getEncodingMapping().GetCanonicalName(label)
		if err != nil {
			return
		}
		label = normaliseLabel(alias)
		enc, found = nativeEncodings[label]
	}
	name = label
	return
}

func canonicalName(charsetEnc encoding.Encoding) (name string, err error) {
	name, err = htmlindex.Name(charsetEnc)
	if err == nil {
		return
	}
	name, err = ianaindex.IANA.Name(charsetEnc)
	return
}

func newEncoding(charsetEnc encoding.Encoding, name string) (textencoding.Encoding, error) {
	normalisedName := normaliseLabel(name)
	switch normalisedName {
	case "utf-8":
		return textencoding.UTF8, nil
	case "us-ascii":
		return textencoding.ASCII, nil
	}
	if enc, found := nativeEncodings[normalisedName]; found {
		return enc, nil
	}
	if cm, ok := charsetEnc.(*charmap.Charmap); ok {
		return textencoding.NewCharmap(cm), nil
	}
	for i := range multiByteEncodings {
		if multiByteEncodings[i] == normalisedName {
			return textencoding.NewMultiByte(name, charsetEnc), nil
		}
	}
	if isStateful(normalisedName) {
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "charset [%v] is stateful", name)
	}
	return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "no streaming support for charset [%v]", name)
}

func findCharsetEncoding(charsetLabel string) (charsetEnc encoding.Encoding, err error) {
	// Check in http://www.w3.org/TR/encoding
	charsetEnc, err = findCharsetEncodingInAnIndex(htmlindex.Get, charsetLabel)
	if commonerrors.Any(err, nil, commonerrors.ErrUnsupported) {
		return
	}
	// Look at this index https://www.iana.org/assignments/character-sets/character-sets.xhtml
	charsetEnc, err = findCharsetEncodingInAnIndex(ianaindex.IANA.Encoding, charsetLabel)
	if commonerrors.Any(err, nil, commonerrors.ErrUnsupported) {
		return
	}
	// Look at the list of known unsupported charsets
	charsetEnc, err = findCharsetEncodingInAnIndex(GetUnsupported, charsetLabel)
	return
}

func findCharsetEncodingInAnIndex(indexSearch func(string) (encoding.Encoding, error), charsetLabel string) (charsetEnc encoding.Encoding, err error) {
	charsetEnc, err = checkEncodingSupport(indexSearch(charsetLabel))
	if commonerrors.Any(err, nil, commonerrors.ErrUnsupported) {
		return
	}
	otherLabel, err := getEncodingMapping().GetCanonicalName(charsetLabel)
	if err != nil {
		return
	}
	charsetEnc, err = checkEncodingSupport(indexSearch(otherLabel))
	return
}

func checkEncodingSupport(charsetEnc encoding.Encoding, err error) (encoding.Encoding, error) {
	// according to index documentation, if the error is nil but the encoding as well, then the encoding should be considered as unsupported by the language
	newErr := err
	if err == nil {
		if charsetEnc == nil {
			newErr = commonerrors.New(commonerrors.ErrUnsupported, "unsupported charset encoding")
		}
	}
	return charsetEnc, newErr
}

// IsSupported states whether a charset label resolves to an encoding which can be streamed.
func IsSupported(charsetLabel string) bool {
	if strings.TrimSpace(charsetLabel) == "" {
		return false
	}
	_, _, err := LookupCharset(charsetLabel)
	return err == nil
}

// IconvString converts string from one text encoding charset to another.
func IconvString(input string, fromEncoding textencoding.Encoding, toEncoding textencoding.Encoding) (string, error) {
	return iconv.NewConverter(fromEncoding, toEncoding).ConvertString(input)
}

// IconvStringFromLabels is similar to IconvString but uses labels.
func IconvStringFromLabels(input string, fromEncodingLabel string, toEncodingLabel string) (transformedText string, err error) {
	fromEncoding, toEncoding, err := lookupPair(fromEncodingLabel, toEncodingLabel)
	if err != nil {
		return
	}
	transformedText, err = IconvString(input, fromEncoding, toEncoding)
	return
}

// IconvBytes converts bytes from one text encoding charset to another.
func IconvBytes(input []byte, fromEncoding textencoding.Encoding, toEncoding textencoding.Encoding) ([]byte, error) {
	return iconv.NewConverter(fromEncoding, toEncoding).ConvertBytes(input)
}

// IconvBytesFromLabels is similar to IconvBytes but uses labels.
func IconvBytesFromLabels(input []byte, fromEncodingLabel string, toEncodingLabel string) (transformedBytes []byte, err error) {
	fromEncoding, toEncoding, err := lookupPair(fromEncodingLabel, toEncodingLabel)
	if err != nil {
		return
	}
	transformedBytes, err = IconvBytes(input, fromEncoding, toEncoding)
	return
}

// Iconv converts from any supported text encodings to any other, through Unicode code points.
// Similar to https://www.gnu.org/software/libiconv/ but streaming in pure go.
func Iconv(reader io.Reader, fromEncoding textencoding.Encoding, toEncoding textencoding.Encoding) io.Reader {
	return iconv.NewConverter(fromEncoding, toEncoding).Convert(reader)
}

// IconvFromLabels is similar to Iconv but uses labels.
func IconvFromLabels(reader io.Reader, fromEncodingLabel string, toEncodingLabel string) (transformedReader io.Reader, err error) {
	fromEncoding, toEncoding, err := lookupPair(fromEncodingLabel, toEncodingLabel)
	if err != nil {
		return
	}
	transformedReader = Iconv(reader, fromEncoding, toEncoding)
	return
}

// IconvWriter returns a writer converting what is written to it from one charset to another before passing it to writer.
// It must be closed to flush any trailing incomplete sequence.
func IconvWriter(writer io.Writer, fromEncoding textencoding.Encoding, toEncoding textencoding.Encoding) io.WriteCloser {
	return iconv.NewConverter(fromEncoding, toEncoding).ConvertWriter(writer)
}

func lookupPair(fromEncodingLabel string, toEncodingLabel string) (fromEncoding textencoding.Encoding, toEncoding textencoding.Encoding, err error) {
	fromEncoding, _, err = LookupCharset(fromEncodingLabel)
	if err != nil {
		return
	}
	toEncoding, _, err = LookupCharset(toEncodingLabel)
	return
}
