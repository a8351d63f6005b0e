package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"guestlink/internal/domain"
)

// StaffRequestInput is the staff-initiated create path: it skips
// classification entirely and takes the display message as given.
type StaffRequestInput struct {
	RoomNumber string          `json:"roomNumber"`
	Kind       domain.Kind     `json:"type"`
	Message    string          `json:"message"`
	GuestPhone string          `json:"guestPhone"`
	Priority   domain.Priority `json:"priority,omitempty"`
}

// RequestService is the admin-side view over the request store: listing,
// staff-initiated creation and status/priority updates, all tenant-scoped.
type RequestService struct {
	rooms    domain.RoomRepository
	requests domain.RequestRepository
	notifier domain.Notifier
}

func NewRequestService(ro domain.RoomRepository, re domain.RequestRepository, n domain.Notifier) *RequestService {
	return &RequestService{rooms: ro, requests: re, notifier: n}
}

func (s *RequestService) List(ctx context.Context, hotelID string) ([]domain.Request, error) {
	return s.requests.ListRequests(ctx, hotelID)
}

func (s *RequestService) Create(ctx context.Context, hotelID string, in StaffRequestInput) (domain.Request, error) {
	var v []string
	if strings.TrimSpace(in.RoomNumber) == "" {
		v = append(v, "roomNumber is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		v = append(v, "message is required")
	}
	if in.Priority != "" && !in.Priority.Valid() {
		v = append(v, "priority must be low, medium or high")
	}
	if len(v) > 0 {
		return domain.Request{}, domain.NewValidationError(v)
	}

	room, err := s.rooms.GetRoomByNumber(ctx, hotelID, in.RoomNumber)
	if err != nil {
		return domain.Request{}, err
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	now := time.Now().UTC().Truncate(time.Second)
	req := domain.Request{
		ID:         uuid.NewString(),
		HotelID:    hotelID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Kind:       in.Kind,
		Message:    in.Message,
		GuestPhone: in.GuestPhone,
		Priority:   priority,
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.requests.CreateRequest(ctx, req); err != nil {
		return domain.Request{}, err
	}
	if err := s.notifier.Publish(ctx, hotelID, req); err != nil {
		log.Warn().Err(err).Str("hotel", hotelID).Str("request", req.ID).Msg("request fan-out failed")
	}
	return req, nil
}

func (s *RequestService) Update(ctx context.Context, hotelID, id string, p domain.RequestPatch) (domain.Request, error) {
	var v []string
	if p.Status == nil && p.Priority == nil {
		v = append(v, "nothing to update: provide status and/or priority")
	}
	if p.Status != nil && !p.Status.Valid() {
		v = append(v, "status must be pending, in-progress, completed or canceled")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		v = append(v, "priority must be low, medium or high")
	}
	if len(v) > 0 {
		return domain.Request{}, domain.NewValidationError(v)
	}
	return s.requests.UpdateRequest(ctx, hotelID, id, p)
}
