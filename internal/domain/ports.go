package domain

import "context"

type HotelRepository interface {
	CreateHotel(ctx context.Context, h Hotel) error
	GetHotel(ctx context.Context, id string) (Hotel, error)
	UpdateHotel(ctx context.Context, h Hotel) (Hotel, error)
}

type RoomRepository interface {
	ListRooms(ctx context.Context, hotelID string) ([]Room, error)
	GetRoomByNumber(ctx context.Context, hotelID, number string) (Room, error)
	CreateRoom(ctx context.Context, r Room) error
	UpdateRoom(ctx context.Context, r Room) (Room, error)
	DeleteRoom(ctx context.Context, hotelID, id string) error
}

type RequestRepository interface {
	ListRequests(ctx context.Context, hotelID string) ([]Request, error)
	CreateRequest(ctx context.Context, r Request) error
	// UpdateRequest applies the patch scoped to (hotelID, id); a request in
	// a foreign tenant is indistinguishable from one that does not exist.
	UpdateRequest(ctx context.Context, hotelID, id string, p RequestPatch) (Request, error)
}

type MenuRepository interface {
	ListFood(ctx context.Context, hotelID string, availableOnly bool) ([]FoodItem, error)
	CreateFood(ctx context.Context, it FoodItem) error
	UpdateFood(ctx context.Context, it FoodItem) (FoodItem, error)
	DeleteFood(ctx context.Context, hotelID, id string) error

	ListServices(ctx context.Context, hotelID string, availableOnly bool) ([]ServiceItem, error)
	CreateService(ctx context.Context, it ServiceItem) error
	UpdateService(ctx context.Context, it ServiceItem) (ServiceItem, error)
	DeleteService(ctx context.Context, hotelID, id string) error

	ListComplaints(ctx context.Context, hotelID string, availableOnly bool) ([]ComplaintItem, error)
	CreateComplaint(ctx context.Context, it ComplaintItem) error
	UpdateComplaint(ctx context.Context, it ComplaintItem) (ComplaintItem, error)
	DeleteComplaint(ctx context.Context, hotelID, id string) error
}

type StaffRepository interface {
	GetStaffByEmail(ctx context.Context, email string) (StaffAccount, error)
	CreateStaff(ctx context.Context, s StaffAccount) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Notifier pushes a freshly stored request to the staff sessions of its
// hotel. Delivery is best-effort; callers must not fail on a Notifier error.
type Notifier interface {
	Publish(ctx context.Context, hotelID string, r Request) error
}
