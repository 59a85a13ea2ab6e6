/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transcoding

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-textconv/$GOPACKAGE InStream,OutStream

// InStream is a buffered source of bytes a Transcoder pulls from.
type InStream interface {
	// TryMakeBytesAvailable tries to make at least minBytes bytes available, reading more if needed.
	// It returns the number of bytes available, which is lower than minBytes only at the end of the data or on error.
	TryMakeBytesAvailable(minBytes int) int
	// ViewAvailable returns the bytes available. They remain valid until the next call to TryMakeBytesAvailable.
	ViewAvailable() []byte
	// Advance consumes n of the bytes available.
	Advance(n int)
	// AtEOF states whether the end of the data was reached i.e. no more bytes will ever be made available.
	AtEOF() bool
}

// OutStream is a buffered sink of bytes a Transcoder pushes to.
type OutStream interface {
	// TryMakeBytesAvailable tries to make room for writing, flushing buffered bytes if needed.
	// It returns false if the stream is closed or failed.
	TryMakeBytesAvailable() bool
	// ViewAvailable returns the room available for writing.
	ViewAvailable() []byte
	// Commit records that the first n bytes of the room available were written.
	Commit(n int)
}
