package handler

import (
	"net/http"

	"github.com/actuallystonmai/content-catalog/internal/controller"
	"github.com/go-chi/render"
)

type Handler struct {
	contents *controller.ContentsController
}

func NewHandler(contents *controller.ContentsController) *Handler {
	return &Handler{contents: contents}
}

// write JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, message any) {
	writeJSON(w, r, status, ErrorResponse{
		Error:   errorCode(status),
		Message: message,
	})
}

func writeStatusError(w http.ResponseWriter, r *http.Request, err error) {
	se := controller.AsStatusError(err)
	writeError(w, r, se.Status, se.Message)
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	}
	return "internal_error"
}
