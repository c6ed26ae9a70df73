package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/service"
	"github.com/MKhiriev/beer-battle/models"
)

type deleteOwnerDocumentsResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) putDocument(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	dec := json.NewDecoder(r.Body)
	// числа остаются json.Number, чтобы миллисекунды не теряли точность
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "*Handler.putDocument")
		return
	}

	id := chi.URLParam(r, "id")
	if strings.TrimSpace(doc.ID) == "" {
		doc.ID = id
	}
	if doc.ID != id {
		logger.FromRequest(r).Warn().Err(ErrIDMismatch).
			Str("path_id", id).
			Str("body_id", doc.ID).
			Send()
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, ErrIDMismatch), "*Handler.putDocument")
		return
	}

	stored, err := h.services.DocumentService.Put(r.Context(), models.StoredDocument{
		Collection: chi.URLParam(r, "collection"),
		Document:   doc,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.putDocument")
		return
	}

	writeJSON(w, r, http.StatusOK, stored)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.DocumentService.Get(r.Context(),
		chi.URLParam(r, "collection"),
		chi.URLParam(r, "id"),
		requestOwner(r),
	)
	if err != nil {
		writeError(w, r, err, "*Handler.getDocument")
		return
	}

	writeJSON(w, r, http.StatusOK, doc)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.DocumentService.List(r.Context(), chi.URLParam(r, "collection"), requestOwner(r))
	if err != nil {
		writeError(w, r, err, "*Handler.listDocuments")
		return
	}
	if docs == nil {
		docs = []models.StoredDocument{}
	}

	writeJSON(w, r, http.StatusOK, docs)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	err := h.services.DocumentService.Delete(r.Context(),
		chi.URLParam(r, "collection"),
		chi.URLParam(r, "id"),
		requestOwner(r),
	)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteDocument")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOwnerDocuments(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.DocumentService.DeleteByOwner(r.Context(), chi.URLParam(r, "collection"), requestOwner(r))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteOwnerDocuments")
		return
	}

	writeJSON(w, r, http.StatusOK, deleteOwnerDocumentsResponse{Deleted: deleted})
}
