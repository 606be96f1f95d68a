package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/misbah/resumeai/internal/transform"
	"github.com/misbah/resumeai/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransformer implements transform.Transformer with canned results.
type stubTransformer struct {
	doc   *types.ResumeDocument
	err   error
	calls int
}

func (s *stubTransformer) Transform(_ context.Context, _ string, _ types.StyleOption) (*types.ResumeDocument, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func testDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		Name:   "Jane Doe",
		Title:  "Engineer",
		Skills: []string{"Go", "SQL"},
	}
}

func newTestServer(t *testing.T, stub *stubTransformer) *Server {
	t.Helper()
	return New(Config{Port: 0}, stub)
}

func postGenerate(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_Success(t *testing.T) {
	stub := &stubTransformer{doc: testDocument()}
	srv := newTestServer(t, stub)

	rec := postGenerate(t, srv, `{"notes": "I fixed servers at PTCL", "style": "corporate"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Resume.Name)
	assert.Contains(t, resp.Preview, "Jane Doe")
	assert.Equal(t, 1, stub.calls)

	// Session slot was replaced.
	current, ok := srv.session.Current()
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", current.Name)
}

func TestHandleGenerate_EmptyNotesRejectedBeforeTransform(t *testing.T) {
	stub := &stubTransformer{doc: testDocument()}
	srv := newTestServer(t, stub)

	rec := postGenerate(t, srv, `{"notes": "   ", "style": "corporate"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestHandleGenerate_UnknownStyle(t *testing.T) {
	stub := &stubTransformer{doc: testDocument()}
	srv := newTestServer(t, stub)

	rec := postGenerate(t, srv, `{"notes": "some notes", "style": "casual"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestHandleGenerate_GenerationErrorSurfacedVerbatim(t *testing.T) {
	stub := &stubTransformer{err: &transform.GenerationError{Message: "backend quota exceeded"}}
	srv := newTestServer(t, stub)

	rec := postGenerate(t, srv, `{"notes": "some notes", "style": "corporate"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "backend quota exceeded")

	// A failed generation never replaces the session document.
	_, ok := srv.session.Current()
	assert.False(t, ok)
}

func TestHandleResume(t *testing.T) {
	stub := &stubTransformer{doc: testDocument()}
	srv := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	postGenerate(t, srv, `{"notes": "some notes", "style": "corporate"}`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Jane Doe", doc.Name)
}

func TestHandleDownload(t *testing.T) {
	stub := &stubTransformer{doc: testDocument()}
	srv := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/api/download", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	postGenerate(t, srv, `{"notes": "some notes", "style": "corporate"}`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Jane_Doe_Resume.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleIndex(t *testing.T) {
	srv := newTestServer(t, &stubTransformer{doc: testDocument()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	page, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	options := page.Find("select#style option")
	require.Equal(t, len(types.Styles()), options.Length())
	assert.Equal(t, "Corporate", options.First().Text())
	assert.Equal(t, 1, page.Find("textarea#notes").Length())
	assert.Equal(t, 1, page.Find("#preview").Length())
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &stubTransformer{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
