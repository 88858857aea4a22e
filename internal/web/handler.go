// Package web hosts the pet lookup HTTP handlers and server.
package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adoptly/shelter/internal/httpx"
	"github.com/adoptly/shelter/internal/store"
)

// Handler serves the pet lookup routes against an injected store.
type Handler struct {
	store  store.Store
	logger *slog.Logger
}

// NewHandler builds the HTTP handler for the web server.
func NewHandler(st store.Store, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{store: st, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.welcome)
	mux.HandleFunc("GET /pets/{id}", h.petByID)
	mux.HandleFunc("GET /species/{species}", h.petsBySpecies)
	mux.HandleFunc("GET /healthz", h.healthz)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(logger),
		httpx.RequestLog(logger),
		httpx.Trace("shelter-web"),
	)
}

func (h *Handler) welcome(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusOK, "welcome.html", nil)
}

func (h *Handler) petByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		// Non-integer ids fall back to the framework-default not-found.
		http.NotFound(w, r)
		return
	}

	pet, err := h.store.GetPet(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.render(w, http.StatusNotFound, "pet_not_found.html", petNotFoundView{ID: id})
		return
	}
	if err != nil {
		h.logger.Error("get pet", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "pet.html", petView{
		ID:      pet.ID,
		Name:    pet.Name,
		Species: pet.Species,
	})
}

func (h *Handler) petsBySpecies(w http.ResponseWriter, r *http.Request) {
	species := r.PathValue("species")

	pets, err := h.store.ListPets(r.Context(), store.ListPetsParams{Species: species})
	if err != nil {
		h.logger.Error("list pets", "species", species, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	view := speciesView{Species: species, Count: len(pets)}
	for _, pet := range pets {
		view.Pets = append(view.Pets, petView{ID: pet.ID, Name: pet.Name, Species: pet.Species})
	}

	h.render(w, http.StatusOK, "species.html", view)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// render executes a page template into a buffer so a template failure
// never leaks a half-written body with a success status.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(w, status, buf.String()); err != nil {
		h.logger.Error("write response", "template", name, "error", err)
	}
}
