package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type StaffAccount struct {
	ID           string    `json:"id"`
	HotelID      string    `json:"hotelId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the resolved caller of an admin-side operation. Every
// tenant-scoped read or mutation requires Identity.HotelID to equal the
// hotel id in the request path.
type Identity struct {
	StaffID string `json:"staffId"`
	HotelID string `json:"hotelId"`
	Role    string `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
