package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/types"
)

// defaultUploadName is logged when a request carries no filename
const defaultUploadName = "upload"

// ScoreRequest represents the request body for POST /score.
// Text must be present but may be empty; JDKeywords overrides the configured list when present.
type ScoreRequest struct {
	Filename        string   `json:"filename,omitempty" validate:"max=255"`
	Text            *string  `json:"text" validate:"required"`
	YearsExperience int      `json:"years_experience" validate:"min=0"`
	JDKeywords      []string `json:"jd_keywords,omitempty"`
}

// handleScore scores one resume and returns the ScoringResult
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req ScoreRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			tooLarge := &ErrBodyTooLarge{Limit: maxBytesErr.Limit}
			s.errorResponse(w, HTTPStatus(tooLarge), tooLarge.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		validationErr := newValidationError(err)
		s.errorResponse(w, HTTPStatus(validationErr), validationErr.Error())
		return
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = defaultUploadName
	}

	input := types.ResumeInput{Text: *req.Text, YearsExperience: req.YearsExperience}
	result := s.engine.ScoreNamed(r.Context(), filename, input, req.JDKeywords)

	body, err := encodeScoringResult(result)
	if err != nil {
		log.Printf("Error: scoring result for %s failed validation: %v", filename, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to produce a valid scoring result")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// encodeScoringResult marshals result and checks it against the scoring result schema
func encodeScoringResult(result *types.ScoringResult) ([]byte, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring result: %w", err)
	}
	if err := schemas.ValidateScoringResult(body); err != nil {
		return nil, err
	}
	return body, nil
}
