package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"guestlink/internal/domain"
)

// Submission is the untrusted guest payload: a kind tag, contact phone and
// at most one variant detail block, exactly as the portal client posts it.
type Submission struct {
	Kind       domain.Kind     `json:"type"`
	GuestPhone string          `json:"guestPhone"`
	Priority   domain.Priority `json:"priority,omitempty"`
	domain.Details
}

// Classifier turns a guest submission into a stored request and pushes it to
// the hotel's staff sessions. The guest path carries no credential, so the
// (hotelID, roomNumber) resolution is its only tenant-isolation check.
type Classifier struct {
	hotels   domain.HotelRepository
	rooms    domain.RoomRepository
	requests domain.RequestRepository
	notifier domain.Notifier
}

func NewClassifier(h domain.HotelRepository, ro domain.RoomRepository, re domain.RequestRepository, n domain.Notifier) *Classifier {
	return &Classifier{hotels: h, rooms: ro, requests: re, notifier: n}
}

// Submit resolves the room, validates, derives the display message, persists
// the request and fans it out. The fan-out is best-effort: once the row is
// stored the guest sees success even if no staff session is listening.
func (c *Classifier) Submit(ctx context.Context, hotelID, roomNumber string, sub Submission) (domain.Request, error) {
	room, err := c.rooms.GetRoomByNumber(ctx, hotelID, roomNumber)
	if err != nil {
		return domain.Request{}, err
	}

	hotel, err := c.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Request{}, err
	}

	if violations := validate(hotel.Settings, sub); len(violations) > 0 {
		return domain.Request{}, domain.NewValidationError(violations)
	}

	priority := sub.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC().Truncate(time.Second)
	req := domain.Request{
		ID:         uuid.NewString(),
		HotelID:    hotel.ID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Kind:       sub.Kind,
		Message:    buildMessage(room.Number, sub),
		GuestPhone: sub.GuestPhone,
		Priority:   priority,
		Status:     domain.StatusPending,
		Details:    sub.Details,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.requests.CreateRequest(ctx, req); err != nil {
		return domain.Request{}, err
	}

	if err := c.notifier.Publish(ctx, hotel.ID, req); err != nil {
		log.Warn().Err(err).Str("hotel", hotel.ID).Str("request", req.ID).Msg("request fan-out failed")
	}
	return req, nil
}

// validate collects every violated rule instead of stopping at the first.
// Unrecognized kinds pass: only a recognized-but-disabled category or a
// missing required field rejects a submission.
func validate(settings domain.Settings, sub Submission) []string {
	var v []string
	if strings.TrimSpace(sub.GuestPhone) == "" {
		v = append(v, "guestPhone is required")
	}
	if !sub.Priority.Valid() && sub.Priority != "" {
		v = append(v, "priority must be low, medium or high")
	}
	switch sub.Kind {
	case domain.KindOrderFood:
		if !settings.OrderFoodEnabled {
			v = append(v, "food ordering is disabled for this hotel")
		}
		if sub.Order == nil || len(sub.Order.Items) == 0 {
			v = append(v, "orderDetails must contain at least one item")
		}
	case domain.KindRoomService:
		if !settings.RoomServiceEnabled {
			v = append(v, "room service is disabled for this hotel")
		}
		if sub.Service == nil || strings.TrimSpace(sub.Service.Name) == "" {
			v = append(v, "serviceDetails.name is required")
		}
	case domain.KindComplaint:
		if !settings.ComplaintEnabled {
			v = append(v, "complaints are disabled for this hotel")
		}
		if sub.Complaint == nil || strings.TrimSpace(sub.Complaint.Name) == "" {
			v = append(v, "complaintDetails.name is required")
		}
	case domain.KindCustomMessage:
		if !settings.CustomMessageEnabled {
			v = append(v, "guest messages are disabled for this hotel")
		}
	case domain.KindCallService:
		if !settings.CallServiceEnabled {
			v = append(v, "service calls are disabled for this hotel")
		}
	case domain.KindSecurityAlert:
		if !settings.SecurityAlertEnabled {
			v = append(v, "security alerts are disabled for this hotel")
		}
	}
	return v
}

// buildMessage derives the canonical display message from the kind tag and
// its detail payload. Computed once at creation time and stored; historical
// records keep the wording they were created with.
func buildMessage(roomNumber string, sub Submission) string {
	switch sub.Kind {
	case domain.KindOrderFood:
		if sub.Order == nil || len(sub.Order.Items) == 0 {
			return fmt.Sprintf("Food order from Room %s.", roomNumber)
		}
		items := make([]string, 0, len(sub.Order.Items))
		for _, it := range sub.Order.Items {
			items = append(items, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}
		return fmt.Sprintf("Food order from Room %s. Items: %s. Total: ₹%s",
			roomNumber, strings.Join(items, ", "), formatAmount(sub.Order.Total))
	case domain.KindRoomService:
		if sub.Service == nil {
			return fmt.Sprintf("Room service request from Room %s.", roomNumber)
		}
		return fmt.Sprintf("Room service from Room %s: %s. %s",
			roomNumber, sub.Service.Name, sub.Service.Description)
	case domain.KindComplaint:
		if sub.Complaint == nil {
			return fmt.Sprintf("Complaint from Room %s.", roomNumber)
		}
		return fmt.Sprintf("Complaint from Room %s: %s. %s",
			roomNumber, sub.Complaint.Name, sub.Complaint.Description)
	case domain.KindCustomMessage:
		if sub.Message == nil || strings.TrimSpace(sub.Message.Text) == "" {
			return fmt.Sprintf("Message from Room %s: no message provided.", roomNumber)
		}
		return sub.Message.Text
	case domain.KindCallService:
		return fmt.Sprintf("Room %s is requesting assistance.", roomNumber)
	case domain.KindSecurityAlert:
		desc := ""
		if sub.Alert != nil {
			desc = sub.Alert.Description
		}
		return fmt.Sprintf("Security Alert from Room %s: %s", roomNumber, desc)
	default:
		return fmt.Sprintf("New request from Room %s.", roomNumber)
	}
}

// formatAmount renders totals without trailing zeros: 40 -> "40", 42.5 -> "42.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
