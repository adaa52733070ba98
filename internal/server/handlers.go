package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"cv-generator/internal/cv"
	"cv-generator/internal/export"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "UI not available")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page) //nolint:errcheck
}

// ---------------------------------------------------------------------
// Document handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	var doc cv.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Replace(doc))
}

type setScalarRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

func (s *Server) handleSetScalar(w http.ResponseWriter, r *http.Request) {
	var req setScalarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Field is required")
		return
	}

	doc, err := s.store.SetScalar(req.Field, req.Value)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleAppendItem(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")

	doc, item, err := s.store.Append(collection)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{"item": item, "document": doc})
}

type setItemFieldRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleSetItemField(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	field := r.PathValue("field")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid item index")
		return
	}

	var req setItemFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := s.store.SetItemField(collection, index, field, req.Value)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	doc, err := s.store.Remove(collection, id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// ---------------------------------------------------------------------
// Photo handlers
// ---------------------------------------------------------------------

const maxPhotoBytes = 10 << 20

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, _, err := r.FormFile("photo")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read photo")
		return
	}

	mime := http.DetectContentType(data)
	if mime != "image/png" && mime != "image/jpeg" {
		s.errorResponse(w, http.StatusBadRequest, "Photo must be a PNG or JPEG image")
		return
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	doc, err := s.store.SetScalar(cv.FieldPhoto, dataURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleRemovePhoto(w http.ResponseWriter, _ *http.Request) {
	doc, err := s.store.SetScalar(cv.FieldPhoto, "")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// ---------------------------------------------------------------------
// Preview and export handlers
// ---------------------------------------------------------------------

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	html, err := s.renderer.Render(s.store.Document())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html) //nolint:errcheck
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	changes, cancel := s.store.Subscribe()
	defer cancel()

	// Initial event so a newly attached client can render immediately.
	sse.WriteEvent("change", s.store.Document()) //nolint:errcheck

	for {
		select {
		case <-r.Context().Done():
			return
		case <-changes:
			if err := sse.WriteEvent("change", s.store.Document()); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"languages": export.SupportedLanguages(),
		"source":    export.SourceLanguage,
	})
}

type exportRequest struct {
	Language string `json:"language" validate:"required,oneof=English Malay Tamil"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Unsupported export language")
		return
	}

	result, err := s.orchestrator.Export(r.Context(), s.store.Document(), req.Language)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Write(result.PDF) //nolint:errcheck
}
