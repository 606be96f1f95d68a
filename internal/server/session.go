package server

import (
	"sync"

	"github.com/misbah/resumeai/internal/types"
)

// Session is the single-slot holder for the most recent resume document.
// Each successful generation replaces the document wholesale; nothing is
// merged and nothing survives a process restart.
type Session struct {
	mu      sync.RWMutex
	current *types.ResumeDocument
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Set replaces the current document.
func (s *Session) Set(doc *types.ResumeDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = doc
}

// Current returns the current document, or false when nothing has been
// generated yet.
func (s *Session) Current() (*types.ResumeDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}
