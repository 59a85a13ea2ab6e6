/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads service and tool configurations from flags, the environment and defaults.
package config

type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}

// Validator is anything which can validate itself.
type Validator interface {
	Validate() error
}
