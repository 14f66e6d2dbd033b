package web

import (
	"errors"
	"net/http"

	"pantry/internal/domain"
	"pantry/internal/service"
	"pantry/internal/validate"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context())
	if err != nil {
		s.respondInternalError(w, "list items error", err)
		return
	}

	// An empty table must serialize as [], not null.
	if items == nil {
		items = []*domain.Item{}
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	name, nameErr := validate.Name(payload)
	quantity, qtyErr := validate.Quantity(payload)
	expiration, expErr := validate.Expiration(payload)
	if fieldErr := firstError(nameErr, qtyErr, expErr); fieldErr != nil {
		http.Error(w, fieldErr.Error(), http.StatusBadRequest)
		return
	}

	item, err := s.service.CreateItem(r.Context(), name, quantity, expiration)
	if err != nil {
		s.respondInternalError(w, "create item error", err)
		return
	}

	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, idErr := validate.ID(r.PathValue("id"))
	if idErr != nil {
		http.Error(w, idErr.Error(), http.StatusBadRequest)
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	name, nameErr := validate.Name(payload)
	quantity, qtyErr := validate.Quantity(payload)
	expiration, expErr := validate.Expiration(payload)
	if fieldErr := firstError(nameErr, qtyErr, expErr); fieldErr != nil {
		http.Error(w, fieldErr.Error(), http.StatusBadRequest)
		return
	}

	item, err := s.service.UpdateItem(r.Context(), id, name, quantity, expiration)
	if err != nil {
		s.respondInternalError(w, "update item error", err)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, idErr := validate.ID(r.PathValue("id"))
	if idErr != nil {
		http.Error(w, idErr.Error(), http.StatusBadRequest)
		return
	}

	item, err := s.service.DeleteItem(r.Context(), id)
	if err != nil {
		s.respondInternalError(w, "delete item error", err)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.service.SuggestRecipes(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSuggestionsDisabled) {
			http.Error(w, "suggestions are not configured", http.StatusServiceUnavailable)
			return
		}
		s.respondInternalError(w, "suggestions error", err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"suggestions": suggestions})
}

// firstError returns the first non-nil field error. All validators run
// regardless; only one reply reaches the client.
func firstError(errs ...*validate.FieldError) *validate.FieldError {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
