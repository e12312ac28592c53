package failure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappersAttachCodes(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name       string
		err        error
		code       string
		validation bool
	}{
		{"config", Config(base), CodeConfigInvalid, true},
		{"invalid input", InvalidInput(base, "in.md"), CodeInputInvalid, true},
		{"input", Input(base, "in.md"), CodeInputRead, false},
		{"extraction", Extraction(base, "in.md"), CodeExtraction, false},
		{"render", Render(base), CodeRender, false},
		{"output", Output(base, "out.md"), CodeOutputWrite, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.Equal(t, tt.code, Code(tt.err))
			assert.Equal(t, tt.validation, IsValidation(tt.err))
		})
	}
}

func TestWrapKeepsFirstClassification(t *testing.T) {
	err := Output(Extraction(errors.New("boom"), "in.md"), "out.md")
	assert.Equal(t, CodeExtraction, Code(err))
}

func TestNilStaysNil(t *testing.T) {
	assert.NoError(t, Config(nil))
	assert.NoError(t, Output(nil, "x"))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, "", Code(errors.New("plain")))
}
