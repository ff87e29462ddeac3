// File: chain.go
// Title: Validator Chain Implementation
// Description: Composable validator chains. A chain runs its validators in order
//              and merges their results; field validators bind a name and a value
//              so one chain can check several components of a date or time.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-19 v0.2.0: Field binding, conditional and parallel validators removed

package validation

import "fmt"

// ValidatorChain represents a chain of validators executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &ValidatorChain{name: chainName}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// Field adds a validator bound to a named value. The value passed to
// Validate is ignored for bound fields.
func (c *ValidatorChain) Field(name string, value interface{}, validator Validator) *ValidatorChain {
	c.validators = append(c.validators, fieldValidator{name: name, value: value, inner: validator})
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default chains collect all errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns the combined result
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, validator := range c.validators {
		result := validator.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return Combine(results...)
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

type fieldValidator struct {
	name  string
	value interface{}
	inner Validator
}

func (f fieldValidator) Validate(interface{}) ValidationResult {
	result := f.inner.Validate(f.value)
	for i := range result.Errors {
		if result.Errors[i].Field == "" {
			result.Errors[i].Field = f.name
			result.Errors[i].Message = f.name + " " + result.Errors[i].Message
		}
		if result.Errors[i].Value == nil {
			result.Errors[i].Value = f.value
		}
	}
	return result
}
