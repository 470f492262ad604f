// Copyright (c) 2026 Noveria. All rights reserved.

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/noveria/noveria/internal/platform/request"
	"github.com/noveria/noveria/internal/platform/respond"
)

// Handler exposes the chapter routes.
type Handler struct {
	service *Service
}

// NewHandler constructs the chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /chapters.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	return router
}

type createRequest struct {
	BookID        string `json:"book_id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	ChapterNumber *int   `json:"chapter_number"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var req createRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c := &Chapter{
		BookID:        req.BookID,
		Title:         req.Title,
		Content:       req.Content,
		ChapterNumber: req.ChapterNumber,
	}

	id, err := handler.service.Create(request.Context(), c)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"id": id})
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, c)
}
