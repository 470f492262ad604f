// Copyright (c) 2026 Noveria. All rights reserved.

package discover

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/noveria/noveria/internal/platform/request"
	"github.com/noveria/noveria/internal/platform/respond"
	"github.com/noveria/noveria/pkg/pagination"
)

// Handler exposes the discovery routes.
type Handler struct {
	service *Service
}

// NewHandler constructs the discover [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /discover.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/trending", handler.trending)
	router.Get("/tags", handler.byTag)
	router.Get("/category", handler.byCategory)
	return router
}

func (handler *Handler) trending(writer http.ResponseWriter, request *http.Request) {
	limit := pagination.LimitFromRequest(request, DefaultTrendingLimit)

	books, err := handler.service.Trending(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}

func (handler *Handler) byTag(writer http.ResponseWriter, request *http.Request) {
	limit := pagination.LimitFromRequest(request, DefaultBrowseLimit)

	books, err := handler.service.BrowseByTag(request.Context(), requestutil.Query(request, "tag"), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}

func (handler *Handler) byCategory(writer http.ResponseWriter, request *http.Request) {
	limit := pagination.LimitFromRequest(request, DefaultBrowseLimit)

	books, err := handler.service.BrowseByCategory(request.Context(), requestutil.Query(request, "category"), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}
