package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"guestlink/internal/adapters/observability"
	"guestlink/internal/app"
)

// Guest surface: no credential, tenant+room scoping comes from the QR-coded
// portal URL only.

func (h *Handlers) guestPortal(w http.ResponseWriter, r *http.Request) {
	view, err := h.Guest.Portal(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "roomNumber"))
	if err != nil {
		respondErr(w, err, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) guestSubmit(w http.ResponseWriter, r *http.Request) {
	var sub app.Submission
	if err := decodeJSON(r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req, err := h.Classifier.Submit(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "roomNumber"), sub)
	if err != nil {
		respondErr(w, err, "Room not found")
		return
	}
	observability.ObserveGuestRequest(string(req.Kind))
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handlers) guestFoodMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Guest.FoodMenu(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) guestServiceMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Guest.ServiceMenu(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) guestComplaintMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Guest.ComplaintMenu(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, items)
}
