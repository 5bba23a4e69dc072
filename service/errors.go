package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateRecord  = errors.New("duplicate record")
)

// ValidationError carries the per-field messages collected by the
// validation layer. It matches ErrFailedValidation under errors.Is so
// callers can switch on the sentinel and still recover the detail with
// errors.As.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrFailedValidation
}

// DuplicateVINError identifies the conflicting VIN on a create that
// collides with an existing record. Matches ErrDuplicateRecord under
// errors.Is.
type DuplicateVINError struct {
	VIN string
}

func (e *DuplicateVINError) Error() string {
	return fmt.Sprintf("vehicle with VIN %s already exists", e.VIN)
}

func (e *DuplicateVINError) Is(target error) bool {
	return target == ErrDuplicateRecord
}
