package app

import (
	"context"
	"fmt"
	"time"

	"guestlink/internal/domain"
)

// PortalView is what the QR-linked landing page shows: the hotel summary and
// the guest's own room.
type PortalView struct {
	Hotel domain.Hotel `json:"hotel"`
	Room  domain.Room  `json:"room"`
}

// GuestService serves the credential-less guest surface. Menu reads are the
// hot path (every portal open) and go through the cache; the room lookup does
// not, since it doubles as the tenant-isolation check.
type GuestService struct {
	hotels   domain.HotelRepository
	rooms    domain.RoomRepository
	menus    domain.MenuRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewGuestService(h domain.HotelRepository, r domain.RoomRepository, m domain.MenuRepository, c domain.Cache, ttl time.Duration) *GuestService {
	return &GuestService{hotels: h, rooms: r, menus: m, cache: c, cacheTTL: ttl}
}

func (s *GuestService) Portal(ctx context.Context, hotelID, roomNumber string) (PortalView, error) {
	room, err := s.rooms.GetRoomByNumber(ctx, hotelID, roomNumber)
	if err != nil {
		return PortalView{}, err
	}
	if !room.Active {
		return PortalView{}, domain.ErrNotFound
	}
	hotel, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return PortalView{}, err
	}
	return PortalView{Hotel: hotel, Room: room}, nil
}

func (s *GuestService) FoodMenu(ctx context.Context, hotelID string) ([]domain.FoodItem, error) {
	key := foodMenuKey(hotelID)
	var out []domain.FoodItem
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	items, err := s.menus.ListFood(ctx, hotelID, true)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds()))
	return items, nil
}

func (s *GuestService) ServiceMenu(ctx context.Context, hotelID string) ([]domain.ServiceItem, error) {
	key := serviceMenuKey(hotelID)
	var out []domain.ServiceItem
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	items, err := s.menus.ListServices(ctx, hotelID, true)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds()))
	return items, nil
}

func (s *GuestService) ComplaintMenu(ctx context.Context, hotelID string) ([]domain.ComplaintItem, error) {
	key := complaintMenuKey(hotelID)
	var out []domain.ComplaintItem
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	items, err := s.menus.ListComplaints(ctx, hotelID, true)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds()))
	return items, nil
}

func foodMenuKey(hotelID string) string      { return fmt.Sprintf("menu:food:%s", hotelID) }
func serviceMenuKey(hotelID string) string   { return fmt.Sprintf("menu:service:%s", hotelID) }
func complaintMenuKey(hotelID string) string { return fmt.Sprintf("menu:complaint:%s", hotelID) }
