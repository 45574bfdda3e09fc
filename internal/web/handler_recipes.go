package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vbonduro/pantry/internal/domain"
)

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	result, err := s.service.SuggestRecipes(r.Context(), query)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to match recipes")
		s.logger.Error("suggest recipes failed", "query", query, "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, newRecipesResponse(query, result, s.service.Now()))
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	detail, err := s.service.GetRecipe(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to get recipe")
		s.logger.Error("get recipe failed", "id", id, "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, newRecipeDetailView(detail, s.service.Now()))
}
