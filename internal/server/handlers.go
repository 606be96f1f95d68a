package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/misbah/resumeai/internal/preview"
	"github.com/misbah/resumeai/internal/render"
	"github.com/misbah/resumeai/internal/types"
)

// GenerateRequest represents the request body for /api/generate.
type GenerateRequest struct {
	Notes string `json:"notes"`
	Style string `json:"style"`
}

// GenerateResponse represents the response for /api/generate.
type GenerateResponse struct {
	Resume  *types.ResumeDocument `json:"resume"`
	Preview string                `json:"preview"`
}

// handleGenerate runs one notes-to-resume transformation and replaces the
// session's current document on success.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Empty input is rejected here, before the transformer is invoked.
	if strings.TrimSpace(req.Notes) == "" {
		s.errorResponse(w, http.StatusBadRequest, "notes are required")
		return
	}

	style, err := types.ParseStyle(req.Style)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := s.transformer.Transform(r.Context(), req.Notes, style)
	if err != nil {
		log.Printf("Generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	fragment, err := preview.HTML(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.session.Set(doc)
	s.jsonResponse(w, http.StatusOK, GenerateResponse{Resume: doc, Preview: fragment})
}

// handleResume returns the session's current document.
func (s *Server) handleResume(w http.ResponseWriter, _ *http.Request) {
	doc, ok := s.session.Current()
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no resume generated yet")
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDownload renders the session's current document as a PDF attachment.
func (s *Server) handleDownload(w http.ResponseWriter, _ *http.Request) {
	doc, ok := s.session.Current()
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no resume generated yet")
		return
	}

	pdf, err := render.PDF(doc)
	if err != nil {
		log.Printf("Render fault: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename()+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
