package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"guestlink/internal/app"
	"guestlink/internal/auth"
	"guestlink/internal/domain"
)

type Handlers struct {
	Auth       *auth.Service
	Verifier   TokenVerifier
	Classifier *app.Classifier
	Requests   *app.RequestService
	Admin      *app.AdminService
	Guest      *app.GuestService
	WS         http.HandlerFunc

	// guest surface rate limit, requests per second per IP
	GuestRPS   int
	GuestBurst int
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.With(Timeout(15 * time.Second)).Post("/v1/auth/login", h.login)

	s.mux.Route("/v1/hotels/{hotelID}", func(r chi.Router) {
		r.Use(Timeout(15 * time.Second))
		r.Use(Authenticate(h.Verifier))
		r.Use(TenantGuard)

		r.Get("/", h.getHotel)
		r.With(RequireAdmin).Put("/", h.updateHotel)

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.listRequests)
			r.Post("/", h.createRequest)
			r.Put("/{id}", h.updateRequest)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", h.listRooms)
			r.Post("/", h.createRoom)
			r.Put("/{id}", h.updateRoom)
			r.Delete("/{id}", h.deleteRoom)
		})

		r.Route("/food-menu", func(r chi.Router) {
			r.Get("/", h.listFood)
			r.Post("/", h.createFood)
			r.Put("/{id}", h.updateFood)
			r.Delete("/{id}", h.deleteFood)
		})

		r.Route("/room-service-menu", func(r chi.Router) {
			r.Get("/", h.listServices)
			r.Post("/", h.createService)
			r.Put("/{id}", h.updateService)
			r.Delete("/{id}", h.deleteService)
		})

		r.Route("/complaint-menu", func(r chi.Router) {
			r.Get("/", h.listComplaints)
			r.Post("/", h.createComplaint)
			r.Put("/{id}", h.updateComplaint)
			r.Delete("/{id}", h.deleteComplaint)
		})
	})

	s.mux.Route("/v1/guest/{hotelID}", func(r chi.Router) {
		r.Use(Timeout(15 * time.Second))
		r.Use(GuestRateLimit(h.GuestRPS, h.GuestBurst))
		r.Get("/food-menu", h.guestFoodMenu)
		r.Get("/room-service-menu", h.guestServiceMenu)
		r.Get("/complaint-menu", h.guestComplaintMenu)
		r.Get("/{roomNumber}", h.guestPortal)
		r.Post("/{roomNumber}/request", h.guestSubmit)
	})

	s.mux.Get("/v1/ws", h.WS)
}

// ---- auth ----

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string              `json:"token"`
	Staff domain.StaffAccount `json:"staff"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	token, staff, err := h.Auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respondErr(w, err, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Staff: staff})
}

// ---- hotel profile ----

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Admin.GetHotel(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var in app.HotelInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	hotel, err := h.Admin.UpdateHotel(r.Context(), chi.URLParam(r, "hotelID"), in)
	if err != nil {
		respondErr(w, err, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

// ---- requests ----

func (h *Handlers) listRequests(w http.ResponseWriter, r *http.Request) {
	out, err := h.Requests.List(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Requests not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createRequest(w http.ResponseWriter, r *http.Request) {
	var in app.StaffRequestInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req, err := h.Requests.Create(r.Context(), chi.URLParam(r, "hotelID"), in)
	if err != nil {
		respondErr(w, err, "Room not found")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handlers) updateRequest(w http.ResponseWriter, r *http.Request) {
	var patch domain.RequestPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req, err := h.Requests.Update(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondErr(w, err, "Request not found")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// ---- rooms ----

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.ListRooms(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Rooms not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var in app.RoomInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	room, err := h.Admin.CreateRoom(r.Context(), chi.URLParam(r, "hotelID"), in)
	if err != nil {
		respondErr(w, err, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	var in app.RoomInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	room, err := h.Admin.UpdateRoom(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id"), in)
	if err != nil {
		respondErr(w, err, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteRoom(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, errorBody{Message: "deleted"})
}

// ---- food menu ----

func (h *Handlers) listFood(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.ListFood(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createFood(w http.ResponseWriter, r *http.Request) {
	var in app.FoodItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	it, err := h.Admin.CreateFood(r.Context(), chi.URLParam(r, "hotelID"), in)
	if err != nil {
		respondErr(w, err, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *Handlers) updateFood(w http.ResponseWriter, r *http.Request) {
	var in app.FoodItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	it, err := h.Admin.UpdateFood(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id"), in)
	if err != nil {
		respondErr(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handlers) deleteFood(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteFood(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, errorBody{Message: "deleted"})
}

// ---- room-service menu ----

func (h *Handlers) listServices(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.ListServices(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createService(w http.ResponseWriter, r *http.Request) {
	var in app.ServiceItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	it, err := h.Admin.CreateService(r.Context(), chi.URLParam(r, "hotelID"), in)
	if err != nil {
		respondErr(w, err, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *Handlers) updateService(w http.ResponseWriter, r *http.Request) {
	var in app.ServiceItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	it, err := h.Admin.UpdateService(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id"), in)
	if err != nil {
		respondErr(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handlers) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteService(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, errorBody{Message: "deleted"})
}

// ---- complaint menu ----

func (h *Handlers) listComplaints(w http.ResponseWriter, r *http.Request) {
	out, err := h.Admin.ListComplaints(r.Context(), chi.URLParam(r, "hotelID"))
	if err != nil {
		respondErr(w, err, "Menu not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createComplaint(w http.ResponseWriter, r *http.Request) {
	var in app.ComplaintItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	it, err := h.Admin.CreateComplaint(r.Context(), chi.URLParam(r, "hotelID"), in)
	if err != nil {
		respondErr(w, err, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *Handlers) updateComplaint(w http.ResponseWriter, r *http.Request) {
	var in app.ComplaintItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	it, err := h.Admin.UpdateComplaint(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id"), in)
	if err != nil {
		respondErr(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handlers) deleteComplaint(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.DeleteComplaint(r.Context(), chi.URLParam(r, "hotelID"), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, errorBody{Message: "deleted"})
}
