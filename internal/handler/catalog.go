package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pharmadesk/api/internal/catalog"
	"github.com/pharmadesk/api/internal/enum"
)

// CatalogSource provides the point-in-time entry set for a document kind.
// Satisfied by catalog.Seed; narrow so tests can inject fixtures.
type CatalogSource func(kind string) []catalog.Entry

// CatalogHandler serves the catalog read endpoint forms fetch on mount.
type CatalogHandler struct {
	source CatalogSource
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(source CatalogSource) *CatalogHandler {
	return &CatalogHandler{source: source}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
// Expected to be mounted at /catalog.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{kind}", h.Get)
}

type catalogResponse struct {
	Kind    string          `json:"kind"`
	Entries []catalog.Entry `json:"entries"`
}

// Get returns the full catalog snapshot for one document kind.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToUpper(chi.URLParam(r, "kind"))
	if !enum.IsDocKind(kind) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid document kind"})
		return
	}

	entries := h.source(kind)
	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, catalogResponse{Kind: kind, Entries: entries})
}
