/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package textio connects transcoders to the io package: buffered streams over readers and writers,
// and reader/writer pipes converting text on the fly.
package textio

// DefaultBufferSize is the buffer size used by pipes when none is specified.
const DefaultBufferSize = 4096

// maxConsecutiveEmptyReads mirrors bufio's limit before giving up on a reader making no progress.
const maxConsecutiveEmptyReads = 100
