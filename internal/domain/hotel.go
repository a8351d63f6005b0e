package domain

import "time"

// Settings toggles which guest-service categories a hotel currently offers.
// A disabled category is hidden from the guest portal and rejected on submit.
type Settings struct {
	OrderFoodEnabled     bool   `json:"orderFoodEnabled"`
	RoomServiceEnabled   bool   `json:"roomServiceEnabled"`
	ComplaintEnabled     bool   `json:"complaintEnabled"`
	CustomMessageEnabled bool   `json:"customMessageEnabled"`
	CallServiceEnabled   bool   `json:"callServiceEnabled"`
	SecurityAlertEnabled bool   `json:"securityAlertEnabled"`
	EmergencyContact     string `json:"emergencyContact"`
}

type Hotel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Number    string    `json:"number"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
