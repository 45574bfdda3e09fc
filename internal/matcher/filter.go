package matcher

import (
	"strings"

	"github.com/vbonduro/pantry/internal/domain"
)

// Filter keeps the recipes whose name or any tag contains query, ignoring
// case. A blank query keeps everything. Order is preserved.
func Filter(recipes []domain.Recipe, query string) []domain.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return recipes
	}

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), q) || hasTag(r.Tags, q) {
			out = append(out, r)
		}
	}
	return out
}

func hasTag(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
