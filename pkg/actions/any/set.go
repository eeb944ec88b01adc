package any

import (
	"github.com/Ramsey-B/reed/pkg/errors"
	"github.com/Ramsey-B/reed/pkg/models"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type SetArguments struct {
	Value any `json:"value"`
}

type SetRefArguments struct {
	Ref string `json:"ref"` // empty selects the whole raw values
}

type DefaultValueArguments struct {
	Default any `json:"default" validate:"required"` // Default value if input is nil/empty
}

// Set replaces the value with a constant.
func Set(constant any) models.StepFunc {
	return models.Pure(func(any) any {
		return constant
	})
}

// SetRef replaces the value with the raw value at ref, or Empty when the
// path does not resolve.
func SetRef(ref string) models.StepFunc {
	return models.WithRaw(func(_, raw any) any {
		return utils.Ref(ref, raw)
	})
}

// Default replaces nil and Empty with fallback.
func Default(fallback any) models.StepFunc {
	return models.Pure(func(value any) any {
		if models.Is(value, models.KindNull, models.KindEmpty) {
			return fallback
		}
		return value
	})
}

func NewSetStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ParseArguments[SetArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Set(parsedArgs.Value), nil
}

func NewSetRefStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[SetRefArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return SetRef(parsedArgs.Ref), nil
}

func NewDefaultValueStep(key string, args any) (models.StepFunc, error) {
	parsedArgs, err := utils.ValidateArguments[DefaultValueArguments](args)
	if err != nil {
		return nil, errors.WrapPipelineError(err).AddAction(key)
	}
	return Default(parsedArgs.Default), nil
}
