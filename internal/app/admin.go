package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"guestlink/internal/domain"
)

// AdminService covers the staff dashboard CRUD: rooms, the three menu
// catalogs and the hotel profile. Menu writes evict the guest-facing cache
// so the portal never serves a stale catalog past one write.
type AdminService struct {
	hotels domain.HotelRepository
	rooms  domain.RoomRepository
	menus  domain.MenuRepository
	cache  domain.Cache
}

func NewAdminService(h domain.HotelRepository, r domain.RoomRepository, m domain.MenuRepository, c domain.Cache) *AdminService {
	return &AdminService{hotels: h, rooms: r, menus: m, cache: c}
}

// ---- hotel profile ----

func (s *AdminService) GetHotel(ctx context.Context, hotelID string) (domain.Hotel, error) {
	return s.hotels.GetHotel(ctx, hotelID)
}

type HotelInput struct {
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Settings domain.Settings `json:"settings"`
}

func (s *AdminService) UpdateHotel(ctx context.Context, hotelID string, in HotelInput) (domain.Hotel, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Hotel{}, domain.NewValidationError([]string{"name is required"})
	}
	cur, err := s.hotels.GetHotel(ctx, hotelID)
	if err != nil {
		return domain.Hotel{}, err
	}
	cur.Name = in.Name
	cur.Address = in.Address
	cur.Phone = in.Phone
	cur.Email = in.Email
	cur.Settings = in.Settings
	cur.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return s.hotels.UpdateHotel(ctx, cur)
}

// ---- rooms ----

type RoomInput struct {
	Number string `json:"number"`
	Active *bool  `json:"active"`
}

func (s *AdminService) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	return s.rooms.ListRooms(ctx, hotelID)
}

func (s *AdminService) CreateRoom(ctx context.Context, hotelID string, in RoomInput) (domain.Room, error) {
	if strings.TrimSpace(in.Number) == "" {
		return domain.Room{}, domain.NewValidationError([]string{"number is required"})
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now().UTC().Truncate(time.Second)
	room := domain.Room{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		Number:    in.Number,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (s *AdminService) UpdateRoom(ctx context.Context, hotelID, id string, in RoomInput) (domain.Room, error) {
	if strings.TrimSpace(in.Number) == "" {
		return domain.Room{}, domain.NewValidationError([]string{"number is required"})
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	room := domain.Room{
		ID:        id,
		HotelID:   hotelID,
		Number:    in.Number,
		Active:    active,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	return s.rooms.UpdateRoom(ctx, room)
}

func (s *AdminService) DeleteRoom(ctx context.Context, hotelID, id string) error {
	return s.rooms.DeleteRoom(ctx, hotelID, id)
}

// ---- food menu ----

type FoodItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   *bool   `json:"available"`
}

func (s *AdminService) ListFood(ctx context.Context, hotelID string) ([]domain.FoodItem, error) {
	return s.menus.ListFood(ctx, hotelID, false)
}

func (s *AdminService) CreateFood(ctx context.Context, hotelID string, in FoodItemInput) (domain.FoodItem, error) {
	var v []string
	if strings.TrimSpace(in.Name) == "" {
		v = append(v, "name is required")
	}
	if in.Price < 0 {
		v = append(v, "price must not be negative")
	}
	if len(v) > 0 {
		return domain.FoodItem{}, domain.NewValidationError(v)
	}
	now := time.Now().UTC().Truncate(time.Second)
	it := domain.FoodItem{
		ID:          uuid.NewString(),
		HotelID:     hotelID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Available:   boolOr(in.Available, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.menus.CreateFood(ctx, it); err != nil {
		return domain.FoodItem{}, err
	}
	_ = s.cache.Del(ctx, foodMenuKey(hotelID))
	return it, nil
}

func (s *AdminService) UpdateFood(ctx context.Context, hotelID, id string, in FoodItemInput) (domain.FoodItem, error) {
	it := domain.FoodItem{
		ID:          id,
		HotelID:     hotelID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Available:   boolOr(in.Available, true),
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	out, err := s.menus.UpdateFood(ctx, it)
	if err != nil {
		return domain.FoodItem{}, err
	}
	_ = s.cache.Del(ctx, foodMenuKey(hotelID))
	return out, nil
}

func (s *AdminService) DeleteFood(ctx context.Context, hotelID, id string) error {
	if err := s.menus.DeleteFood(ctx, hotelID, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, foodMenuKey(hotelID))
	return nil
}

// ---- room-service menu ----

type ServiceItemInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime"`
	Available     *bool  `json:"available"`
}

func (s *AdminService) ListServices(ctx context.Context, hotelID string) ([]domain.ServiceItem, error) {
	return s.menus.ListServices(ctx, hotelID, false)
}

func (s *AdminService) CreateService(ctx context.Context, hotelID string, in ServiceItemInput) (domain.ServiceItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ServiceItem{}, domain.NewValidationError([]string{"name is required"})
	}
	now := time.Now().UTC().Truncate(time.Second)
	it := domain.ServiceItem{
		ID:            uuid.NewString(),
		HotelID:       hotelID,
		Name:          in.Name,
		Description:   in.Description,
		EstimatedTime: in.EstimatedTime,
		Available:     boolOr(in.Available, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.menus.CreateService(ctx, it); err != nil {
		return domain.ServiceItem{}, err
	}
	_ = s.cache.Del(ctx, serviceMenuKey(hotelID))
	return it, nil
}

func (s *AdminService) UpdateService(ctx context.Context, hotelID, id string, in ServiceItemInput) (domain.ServiceItem, error) {
	it := domain.ServiceItem{
		ID:            id,
		HotelID:       hotelID,
		Name:          in.Name,
		Description:   in.Description,
		EstimatedTime: in.EstimatedTime,
		Available:     boolOr(in.Available, true),
		UpdatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	out, err := s.menus.UpdateService(ctx, it)
	if err != nil {
		return domain.ServiceItem{}, err
	}
	_ = s.cache.Del(ctx, serviceMenuKey(hotelID))
	return out, nil
}

func (s *AdminService) DeleteService(ctx context.Context, hotelID, id string) error {
	if err := s.menus.DeleteService(ctx, hotelID, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, serviceMenuKey(hotelID))
	return nil
}

// ---- complaint menu ----

type ComplaintItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Severity    domain.Priority `json:"severity"`
	Available   *bool           `json:"available"`
}

func (s *AdminService) ListComplaints(ctx context.Context, hotelID string) ([]domain.ComplaintItem, error) {
	return s.menus.ListComplaints(ctx, hotelID, false)
}

func (s *AdminService) CreateComplaint(ctx context.Context, hotelID string, in ComplaintItemInput) (domain.ComplaintItem, error) {
	var v []string
	if strings.TrimSpace(in.Name) == "" {
		v = append(v, "name is required")
	}
	severity := in.Severity
	if severity == "" {
		severity = domain.PriorityMedium
	} else if !severity.Valid() {
		v = append(v, "severity must be low, medium or high")
	}
	if len(v) > 0 {
		return domain.ComplaintItem{}, domain.NewValidationError(v)
	}
	now := time.Now().UTC().Truncate(time.Second)
	it := domain.ComplaintItem{
		ID:          uuid.NewString(),
		HotelID:     hotelID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Severity:    severity,
		Available:   boolOr(in.Available, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.menus.CreateComplaint(ctx, it); err != nil {
		return domain.ComplaintItem{}, err
	}
	_ = s.cache.Del(ctx, complaintMenuKey(hotelID))
	return it, nil
}

func (s *AdminService) UpdateComplaint(ctx context.Context, hotelID, id string, in ComplaintItemInput) (domain.ComplaintItem, error) {
	severity := in.Severity
	if severity == "" {
		severity = domain.PriorityMedium
	}
	it := domain.ComplaintItem{
		ID:          id,
		HotelID:     hotelID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Severity:    severity,
		Available:   boolOr(in.Available, true),
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	out, err := s.menus.UpdateComplaint(ctx, it)
	if err != nil {
		return domain.ComplaintItem{}, err
	}
	_ = s.cache.Del(ctx, complaintMenuKey(hotelID))
	return out, nil
}

func (s *AdminService) DeleteComplaint(ctx context.Context, hotelID, id string) error {
	if err := s.menus.DeleteComplaint(ctx, hotelID, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, complaintMenuKey(hotelID))
	return nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
