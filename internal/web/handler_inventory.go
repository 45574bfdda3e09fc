package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vbonduro/pantry/internal/domain"
)

func (s *Server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	items, err := s.service.ListInventory(r.Context(), category)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to list inventory")
		s.logger.Error("list inventory failed", "category", category, "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, inventoryResponse{
		Category: category,
		Items:    newItemViews(items, s.service.Now()),
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.service.Categories(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to list categories")
		s.logger.Error("list categories failed", "error", err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	s.writeJSON(w, http.StatusOK, categoriesResponse{Categories: categories})
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := s.service.GetItem(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to get item")
		s.logger.Error("get item failed", "id", id, "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, newItemView(*item, s.service.Now()))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.service.DeleteItem(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to delete item")
		s.logger.Error("delete item failed", "id", id, "error", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
