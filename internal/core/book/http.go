// Copyright (c) 2026 Noveria. All rights reserved.

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noveria/noveria/internal/core/chapter"
	"github.com/noveria/noveria/internal/core/comment"
	requestutil "github.com/noveria/noveria/internal/platform/request"
	"github.com/noveria/noveria/internal/platform/respond"
	"github.com/noveria/noveria/pkg/pagination"
)

// Handler exposes the book routes, including the chapter and comment
// sub-resources that live under a book's URL.
type Handler struct {
	service  *Service
	chapters *chapter.Service
	comments *comment.Service
}

// NewHandler constructs the book [Handler].
func NewHandler(service *Service, chapters *chapter.Service, comments *comment.Service) *Handler {
	return &Handler{
		service:  service,
		chapters: chapters,
		comments: comments,
	}
}

// Routes returns the router for /books.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/chapters", handler.listChapters)
	router.Get("/{id}/comments", handler.listComments)
	return router
}

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AuthorName  string   `json:"author_name"`
	CoverURL    string   `json:"cover_url"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
	Genre       string   `json:"genre"`
	Status      string   `json:"status"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var req createRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	b := &Book{
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		CoverURL:    req.CoverURL,
		Tags:        req.Tags,
		Categories:  req.Categories,
		Genre:       req.Genre,
		Status:      Status(req.Status),
	}

	id, err := handler.service.Create(request.Context(), b)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{"id": id})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Query:    requestutil.Query(request, "q"),
		Tag:      requestutil.Query(request, "tag"),
		Category: requestutil.Query(request, "category"),
		Genre:    requestutil.Query(request, "genre"),
	}
	limit := pagination.LimitFromRequest(request, pagination.DefaultLimit)

	books, err := handler.service.List(request.Context(), filter, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	b, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, b)
}

// listChapters handles GET /books/{id}/chapters.
//
// The book id is a weak reference here: no existence check, an unknown book
// simply lists zero chapters.
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	chapters, err := handler.chapters.ListByBook(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapters)
}

// listComments handles GET /books/{id}/comments.
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.comments.ListByBook(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comments)
}
