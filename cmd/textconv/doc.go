/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Textconv converts text between character encodings, similarly to iconv.
//
// Usage:
//
//	textconv --from LABEL [--to LABEL] [--input FILE] [--output FILE] [--buffer-size N] [--verbose]
//
// Text is read from standard input unless --input is given and written to standard output unless
// --output is given. Labels are IANA or WHATWG charset names (e.g. gbk, Shift_JIS, utf-16le,
// windows-1252). Malformed input is replaced rather than rejected.
//
// Every flag can also be set through an environment variable prefixed with TEXTCONV_
// (e.g. TEXTCONV_FROM, TEXTCONV_BUFFER_SIZE), including from a .env file in the working directory.
package main
