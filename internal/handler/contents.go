package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/actuallystonmai/content-catalog/internal/usecase"
	"github.com/go-chi/chi/v5"
)

const (
	invalidObjectFormat = "invalid object format"
	maxBodyBytes        = 1 << 20
)

var (
	errNotAnObject  = errors.New("body is not a JSON object")
	errTrailingData = errors.New("unexpected data after JSON object")
)

// POST /contents
func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, invalidObjectFormat)
		return
	}

	content, err := h.contents.Create(r.Context(), input)
	if err != nil {
		writeStatusError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, content)
}

// GET /contents/{contentID}
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseContentID(w, r)
	if !ok {
		return
	}

	content, err := h.contents.Get(r.Context(), id)
	if err != nil {
		writeStatusError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, content)
}

// PUT /contents/{contentID}
func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseContentID(w, r)
	if !ok {
		return
	}
	// An unreadable body reaches the controller as nil input so that an
	// unknown id still answers 404.
	input, _ := decodeInput(w, r)

	content, err := h.contents.Put(r.Context(), id, input)
	if err != nil {
		writeStatusError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, content)
}

// DELETE /contents/{contentID}
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseContentID(w, r)
	if !ok {
		return
	}

	h.contents.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func parseContentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contentID"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return id, true
}

// decodeInput reads a single JSON object body, keeping numbers as json.Number.
func decodeInput(w http.ResponseWriter, r *http.Request) (usecase.Input, error) {
	var input usecase.Input
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, errNotAnObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return input, nil
}
