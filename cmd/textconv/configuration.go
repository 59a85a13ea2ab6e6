/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-textconv/config"
	cvalidation "github.com/ARM-software/golang-textconv/config/validation"
	"github.com/ARM-software/golang-textconv/textio"
)

const envVarPrefix = "textconv"

// Configuration describes a conversion run.
type Configuration struct {
	From       string `mapstructure:"from"`
	To         string `mapstructure:"to"`
	Input      string `mapstructure:"input"`
	Output     string `mapstructure:"output"`
	BufferSize int    `mapstructure:"buffer_size"`
	Verbose    bool   `mapstructure:"verbose"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.From, validation.Required, cvalidation.IsSupportedCharset()),
		validation.Field(&cfg.To, validation.Required, cvalidation.IsSupportedCharset()),
		validation.Field(&cfg.BufferSize, cvalidation.IsBufferSize()),
	)
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		To:         "UTF-8",
		BufferSize: textio.DefaultBufferSize,
	}
}

var _ config.IServiceConfiguration = &Configuration{}
