// Copyright (c) 2026 Noveria. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/noveria/noveria/internal/platform/request"
	"github.com/noveria/noveria/internal/platform/respond"
)

// Handler exposes the comment routes.
type Handler struct {
	service *Service
}

// NewHandler constructs the comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /comments.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.create)
	return router
}

type createRequest struct {
	BookID   string `json:"book_id"`
	UserName string `json:"user_name"`
	Content  string `json:"content"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var req createRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c := &Comment{
		BookID:   req.BookID,
		UserName: req.UserName,
		Content:  req.Content,
	}

	id, err := handler.service.Create(request.Context(), c)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"id": id})
}
