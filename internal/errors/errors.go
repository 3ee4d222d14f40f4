package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrUnknownPalette = errors.New("unknown palette")
	ErrInvalidColor   = errors.New("invalid color")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidInput   = errors.New("invalid input")
)

// UnknownPaletteError indicates a palette name that matches nothing in the registry.
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("'%s' is not a recognized palette", e.Name)
}

func (e *UnknownPaletteError) Unwrap() error {
	return ErrUnknownPalette
}

// InvalidColorError indicates a color spec that can't be converted to RGB,
// or a color sequence with nothing in it.
type InvalidColorError struct {
	Source string // Palette name or literal representation the color came from
	Spec   string // The offending spec, empty when the sequence itself is empty
}

func (e *InvalidColorError) Error() string {
	if e.Spec == "" {
		return fmt.Sprintf("could not generate a palette for %s: no colors", e.Source)
	}
	if e.Source == "" {
		return fmt.Sprintf("invalid color %q", e.Spec)
	}
	return fmt.Sprintf("could not generate a palette for %s: invalid color %q", e.Source, e.Spec)
}

func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}

// AlreadyExistsError indicates a resource already exists.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Helper constructors for common cases

func UnknownPalette(name string) error {
	return &UnknownPaletteError{Name: name}
}

func InvalidColor(source, spec string) error {
	return &InvalidColorError{Source: source, Spec: spec}
}

func EmptyPalette(source string) error {
	return &InvalidColorError{Source: source}
}

func PaletteAlreadyExists(name string) error {
	return &AlreadyExistsError{Resource: "palette", ID: name}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsUnknownPalette checks if an error is an unknown-palette error.
func IsUnknownPalette(err error) bool {
	return errors.Is(err, ErrUnknownPalette)
}

// IsInvalidColor checks if an error is an invalid-color error.
func IsInvalidColor(err error) bool {
	return errors.Is(err, ErrInvalidColor)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
