// Package types provides type definitions for structured data used throughout the cv-scorer system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeInput is a single resume ready for scoring.
// Text is the already-extracted plain text; YearsExperience is declared by the caller
// and is not mined from the text.
type ResumeInput struct {
	Text            string `json:"text"`
	YearsExperience int    `json:"years_experience" validate:"min=0"`
}

// Validate validates the ResumeInput using the validator.
// The scoring engine never calls this; it is for the CLI and HTTP boundaries.
func (r *ResumeInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// KeywordCategory is one named group of keywords in a KeywordDictionary.
type KeywordCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// KeywordDictionary is an ordered list of keyword categories.
// Order matters: matched keywords are reported in dictionary iteration order.
type KeywordDictionary []KeywordCategory

// Clone returns a deep copy of the dictionary.
func (d KeywordDictionary) Clone() KeywordDictionary {
	if d == nil {
		return nil
	}
	out := make(KeywordDictionary, len(d))
	for i, c := range d {
		out[i] = KeywordCategory{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}
