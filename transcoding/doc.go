/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package transcoding converts text from one encoding to another while streaming through buffers whose
// boundaries do not align with code unit boundaries.
//
// A Transcoder decodes source bytes into code points and re-encodes them into destination bytes. Units torn
// across calls are kept in small fixed size carry buffers so that the output does not depend on how the
// source or the destination are chunked, and no allocation takes place during a conversion.
//
// A Transcoder is bound to one stream and is not safe for concurrent use.
package transcoding
