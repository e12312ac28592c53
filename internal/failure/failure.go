// Package failure classifies the errors a run can end with. Every stage
// boundary wraps its error here so main can log one diagnostic and exit.
package failure

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInputInvalid  = "INPUT_INVALID"
	CodeInputRead     = "INPUT_READ_FAILED"
	CodeExtraction    = "EXTRACTION_FAILED"
	CodeRender        = "RENDER_FAILED"
	CodeOutputWrite   = "OUTPUT_WRITE_FAILED"
)

// Config marks err as an invalid configuration
func Config(err error) error {
	return wrap(err, goerrors.CategoryValidation, "invalid configuration", CodeConfigInvalid)
}

// InvalidInput marks err as an input path that failed validation
func InvalidInput(err error, path string) error {
	return wrap(err, goerrors.CategoryValidation, fmt.Sprintf("invalid input %q", path), CodeInputInvalid)
}

// Input marks err as a failure to read or decode the input document
func Input(err error, path string) error {
	return wrap(err, goerrors.CategoryCommand, fmt.Sprintf("read input %q", path), CodeInputRead)
}

// Extraction marks err as a failure of the extraction grammar
func Extraction(err error, path string) error {
	return wrap(err, goerrors.CategoryCommand, fmt.Sprintf("extract from %q", path), CodeExtraction)
}

// Render marks err as a failure to serialize extracted rows
func Render(err error) error {
	return wrap(err, goerrors.CategoryCommand, "render output", CodeRender)
}

// Output marks err as a failure to write the output file
func Output(err error, path string) error {
	return wrap(err, goerrors.CategoryCommand, fmt.Sprintf("write output %q", path), CodeOutputWrite)
}

func wrap(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

// Code returns the text code attached by this package, or "" for errors that
// never crossed a stage boundary.
func Code(err error) string {
	var ge *goerrors.Error
	if errors.As(err, &ge) {
		return ge.TextCode
	}
	return ""
}

// IsValidation reports whether err came from configuration or input checks
func IsValidation(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
