package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pharmadesk/api/internal/document"
	"github.com/pharmadesk/api/internal/enum"
	"github.com/pharmadesk/api/internal/ws"
)

// recentLimit caps how many received documents are kept per kind for the
// history views.
const recentLimit = 50

// Broadcaster pushes a submission event to feed subscribers.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(kind string, event ws.Event)
}

// DocumentsHandler is the submission sink: it receives complete,
// already-consistent documents from forms, assigns receipt IDs, and feeds
// the history views. Totals arrive computed; nothing is recalculated
// server-side. Received documents live in memory only.
type DocumentsHandler struct {
	hub Broadcaster

	mu     sync.RWMutex
	recent map[string][]document.Document
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(hub Broadcaster) *DocumentsHandler {
	return &DocumentsHandler{
		hub:    hub,
		recent: make(map[string][]document.Document),
	}
}

// RegisterRoutes registers document endpoints on the given Chi router.
// Expected to be mounted at /documents.
func (h *DocumentsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/{kind}", h.Create)
	r.Get("/{kind}", h.List)
}

type createDocumentResponse struct {
	ID string `json:"id"`
}

type listDocumentsResponse struct {
	Kind      string              `json:"kind"`
	Documents []document.Document `json:"documents"`
}

// Create accepts one submitted document, assigns it a receipt ID, records
// it, and broadcasts it to feed subscribers.
func (h *DocumentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToUpper(chi.URLParam(r, "kind"))
	if !enum.IsDocKind(kind) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid document kind"})
		return
	}

	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(doc.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items are required"})
		return
	}

	doc.Kind = kind
	doc.ID = uuid.New().String()

	h.mu.Lock()
	docs := append([]document.Document{doc}, h.recent[kind]...)
	if len(docs) > recentLimit {
		docs = docs[:recentLimit]
	}
	h.recent[kind] = docs
	h.mu.Unlock()

	h.broadcastSubmitted(doc)

	writeJSON(w, http.StatusCreated, createDocumentResponse{ID: doc.ID})
}

// List returns the most recently received documents of one kind, newest
// first.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToUpper(chi.URLParam(r, "kind"))
	if !enum.IsDocKind(kind) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid document kind"})
		return
	}

	h.mu.RLock()
	docs := make([]document.Document, len(h.recent[kind]))
	copy(docs, h.recent[kind])
	h.mu.RUnlock()

	writeJSON(w, http.StatusOK, listDocumentsResponse{Kind: kind, Documents: docs})
}

func (h *DocumentsHandler) broadcastSubmitted(doc document.Document) {
	payload, err := json.Marshal(doc)
	if err != nil {
		log.Printf("ERROR: failed to encode submission event: %v", err)
		return
	}
	h.hub.Broadcast(doc.Kind, ws.Event{Type: "document.submitted", Payload: payload})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
