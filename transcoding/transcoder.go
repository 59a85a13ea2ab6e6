/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transcoding

import (
	"fmt"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/textencoding"
)

// Transcoder converts a stream of text from a source encoding to a destination encoding.
type Transcoder struct {
	dstEncoding textencoding.Encoding
	srcEncoding textencoding.Encoding
	// source bytes of a unit torn across calls, not decoded yet.
	srcCarry carryBuffer
	// encoded bytes which did not fit in the destination yet.
	dstCarry carryBuffer
}

// New returns a transcoder converting text encoded with srcEncoding into dstEncoding.
func New(dstEncoding, srcEncoding textencoding.Encoding) *Transcoder {
	return &Transcoder{
		dstEncoding: dstEncoding,
		srcEncoding: srcEncoding,
	}
}

// DstEncoding returns the encoding text is converted into.
func (t *Transcoder) DstEncoding() textencoding.Encoding {
	return t.dstEncoding
}

// SrcEncoding returns the encoding text is converted from.
func (t *Transcoder) SrcEncoding() textencoding.Encoding {
	return t.srcEncoding
}

// Reset discards any pending state so that the transcoder can be used for a new stream.
func (t *Transcoder) Reset() {
	t.srcCarry.reset()
	t.dstCarry.reset()
}

// Pending states whether some converted bytes are still waiting for room in a destination.
func (t *Transcoder) Pending() bool {
	return !t.dstCarry.isEmpty()
}

func (t *Transcoder) String() string {
	return fmt.Sprintf("%v to %v", textencoding.Name(t.srcEncoding), textencoding.Name(t.dstEncoding))
}

// Convert converts as many code points from src into dst as both allow. It returns the number of bytes written
// to dst, the number of bytes consumed from src and whether any progress was made. Bytes of a unit torn at the
// end of src are consumed and kept until the next call; encoded bytes which do not fit in dst are kept and
// written first on the next call.
//
// flush states that no more source bytes will follow: a trailing incomplete unit is then decoded into the
// source encoding's fallback code point instead of being kept.
//
// Nothing happens when dst is empty.
func (t *Transcoder) Convert(dst, src []byte, flush bool) (nDst, nSrc int, didWork bool) {
	if len(dst) == 0 {
		return
	}
	for !t.dstCarry.isEmpty() || !t.srcCarry.isEmpty() {
		if n := t.dstCarry.copyTo(dst[nDst:]); n > 0 {
			nDst += n
			didWork = true
		}
		if nDst == len(dst) {
			return
		}
		if t.srcCarry.isEmpty() {
			break
		}

		// A unit was torn during a previous call: complete it with new input.
		staged := t.srcCarry.numBytes
		appended := t.srcCarry.appendFrom(src[nSrc:])
		decoded := t.srcEncoding.DecodePoint(t.srcCarry.view())
		if decoded.Status == textencoding.StatusTruncated && !flush {
			mustHoldTornUnit(t.srcCarry.numBytes)
			nSrc += appended
			if appended > 0 {
				didWork = true
			}
			return
		}
		mustBeDecodable(decoded, t.srcCarry.numBytes)
		if decoded.NumBytes >= staged {
			// Bytes appended but not part of the unit stay in src.
			nSrc += decoded.NumBytes - staged
			t.srcCarry.reset()
		} else {
			t.srcCarry.numBytes = staged
			t.srcCarry.popFront(decoded.NumBytes)
		}
		didWork = true
		t.encodeToCarry(decoded.Point)
	}

	for nSrc < len(src) {
		decoded := t.srcEncoding.DecodePoint(src[nSrc:])
		didWork = true
		if decoded.Status == textencoding.StatusTruncated && !flush {
			mustHoldTornUnit(len(src) - nSrc)
			nSrc += t.srcCarry.appendFrom(src[nSrc:])
			return
		}
		mustBeDecodable(decoded, len(src)-nSrc)
		nSrc += decoded.NumBytes

		if len(dst)-nDst >= textencoding.MaxUnitBytes {
			n := t.dstEncoding.EncodePoint(dst[nDst:], decoded.Point)
			mustBeEncoded(n)
			nDst += n
		} else {
			t.encodeToCarry(decoded.Point)
			nDst += t.dstCarry.copyTo(dst[nDst:])
			if nDst == len(dst) {
				return
			}
		}
	}
	return
}

// ConvertView is similar to Convert but advances the dst and src windows past the bytes written and consumed.
func (t *Transcoder) ConvertView(dst, src *[]byte, flush bool) (didWork bool) {
	nDst, nSrc, didWork := t.Convert(*dst, *src, flush)
	*dst = (*dst)[nDst:]
	*src = (*src)[nSrc:]
	return
}

// WriteTo converts src into the space out makes available, until either out has no more room or no progress can
// be made. It returns the number of bytes consumed from src and whether anything was done.
func (t *Transcoder) WriteTo(out OutStream, src []byte, flush bool) (nSrc int, anyWorkDone bool) {
	for out.TryMakeBytesAvailable() {
		nDst, n, didWork := t.Convert(out.ViewAvailable(), src[nSrc:], flush)
		out.Commit(nDst)
		nSrc += n
		if !didWork {
			break
		}
		anyWorkDone = true
	}
	return
}

// ReadFrom converts bytes read from in into dst. It only reads more from in when what is available does not
// produce any output, so that it blocks as little as possible. It returns the number of bytes written to dst,
// which is zero only once in reached the end of its data and nothing is pending, or when dst is empty.
func (t *Transcoder) ReadFrom(in InStream, dst []byte) (bytesWritten int) {
	if len(dst) == 0 {
		return
	}
	for {
		// Fewer bytes are only made available at the end of the data.
		in.TryMakeBytesAvailable(textencoding.MaxUnitBytes)
		flush := in.AtEOF()
		nDst, nSrc, _ := t.Convert(dst[bytesWritten:], in.ViewAvailable(), flush)
		in.Advance(nSrc)
		bytesWritten += nDst
		if nDst > 0 || flush {
			return
		}
	}
}

func (t *Transcoder) encodeToCarry(point rune) {
	n := t.dstEncoding.EncodePoint(t.dstCarry.bytes[:], point)
	mustBeEncoded(n)
	t.dstCarry.numBytes = n
}

func mustHoldTornUnit(numBytes int) {
	if numBytes >= carryCapacity {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "encoding reported %v bytes as a truncated unit", numBytes))
	}
}

func mustBeDecodable(decoded textencoding.DecodeResult, available int) {
	if decoded.Point < 0 {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "encoding decoded a negative code point (%v)", decoded.Point))
	}
	if decoded.NumBytes <= 0 || decoded.NumBytes > available || decoded.NumBytes > textencoding.MaxUnitBytes {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "encoding decoded %v bytes out of %v", decoded.NumBytes, available))
	}
}

func mustBeEncoded(numBytes int) {
	if numBytes <= 0 || numBytes > textencoding.MaxUnitBytes {
		panic(commonerrors.Newf(commonerrors.ErrInvalid, "encoding encoded a code point into %v bytes", numBytes))
	}
}
