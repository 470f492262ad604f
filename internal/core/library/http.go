// Copyright (c) 2026 Noveria. All rights reserved.

package library

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/noveria/noveria/internal/platform/request"
	"github.com/noveria/noveria/internal/platform/respond"
)

// Handler exposes the library routes.
type Handler struct {
	service *Service
}

// NewHandler constructs the library [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /library.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.add)
	router.Get("/{userID}", handler.getLibrary)
	return router
}

type addRequest struct {
	UserID string `json:"user_id"`
	BookID string `json:"book_id"`
}

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var req addRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Add(request.Context(), req.UserID, req.BookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"id": id})
}

func (handler *Handler) getLibrary(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.GetLibrary(request.Context(), requestutil.Param(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}
