/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-textconv/commonerrors"
	"github.com/ARM-software/golang-textconv/reflection"
)

// WrapFieldValidationError creates an error resulting from the validation of a field in a structure
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure, prefix)
	return vErr
}

// WrapValidationError creates an error resulting from the validation of a structure
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if !reflection.IsEmpty(prefix) {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

// IValidationError defines a typical structure validation error.
type IValidationError interface {
	error
	fmt.Stringer
	// GetMapStructurePath returns the environment variable corresponding to the invalid field e.g. TEXTCONV_FROM
	GetMapStructurePath() string
	// GetTreePath returns the path to the invalid field in the structure e.g. Conversion->From
	GetTreePath() string
	GetReason() string
	Unwrap() error
	RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string)
	RecordPrefix(mapStructurePrefix string)
}

type validationError struct {
	tree               []string
	mapStructureTree   []string
	mapStructurePrefix *string
	reason             string
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string) {
	v.tree = slices.Insert(v.tree, 0, strings.TrimSpace(fieldName))
	if mapStructureFieldName != nil {
		v.mapStructureTree = slices.Insert(v.mapStructureTree, 0, strings.ToUpper(strings.TrimSpace(*mapStructureFieldName)))
	}
	if mapStructurePrefix != nil {
		v.mapStructurePrefix = mapStructurePrefix
	}
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	prefix := strings.TrimSpace(mapStructurePrefix)
	v.mapStructurePrefix = &prefix
}

func (v *validationError) Error() string {
	mapstructureStr := v.GetMapStructurePath()
	if mapstructureStr != "" {
		mapstructureStr = fmt.Sprintf(" [%v]", mapstructureStr)
	}
	treeStr := v.GetTreePath()
	if treeStr != "" {
		treeStr = fmt.Sprintf(" (%v)", treeStr)
	}
	reasonStr := v.GetReason()
	if reasonStr != "" {
		reasonStr = fmt.Sprintf(" %v", reasonStr)
	}

	return commonerrors.Newf(v.Unwrap(), "structure failed validation:%v%v%v", treeStr, mapstructureStr, reasonStr).Error()
}

func (v *validationError) GetMapStructurePath() string {
	if len(v.mapStructureTree) == 0 {
		return ""
	}
	mapstructureStr := strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
	if v.mapStructurePrefix != nil && *v.mapStructurePrefix != "" {
		mapstructureStr = fmt.Sprintf("%v%v%v", strings.ToUpper(*v.mapStructurePrefix), EnvVarSeparator, mapstructureStr)
	}
	return mapstructureStr
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.tree, "->")
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Error()}
	}
	return &validationError{reason: err.Error()}
}

func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *validationError {
	if len(oes) == 0 {
		return &validationError{
			reason: oes.Error(),
		}
	}
	// Only the first failing parameter is reported.
	param := slices.Sorted(maps.Keys(oes))[0]
	veo := &validationError{
		reason: oes[param].Error(),
	}
	// ozzo reports errors using the tag set in validation.ErrorTag
	veo.RecordField(param, &param, nil)
	return veo
}
