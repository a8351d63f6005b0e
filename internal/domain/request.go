package domain

import "time"

type Kind string

const (
	KindOrderFood     Kind = "order-food"
	KindRoomService   Kind = "room-service"
	KindComplaint     Kind = "complaint"
	KindCustomMessage Kind = "custom-message"
	KindCallService   Kind = "call-service-boy"
	KindSecurityAlert Kind = "security-alert"
)

// Known reports whether k is one of the recognized request kinds.
// Unrecognized kinds are still accepted on the guest path (client/server
// version drift must never reject a submission).
func (k Kind) Known() bool {
	switch k {
	case KindOrderFood, KindRoomService, KindComplaint,
		KindCustomMessage, KindCallService, KindSecurityAlert:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted || s == StatusCanceled
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

type OrderDetails struct {
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

type ServiceDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ComplaintDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MessageDetails struct {
	Text string `json:"text"`
}

type AlertDetails struct {
	Description string `json:"description"`
}

// Details is the tagged-union payload of a request: the kind discriminator
// on Request selects which variant is populated. call-service-boy carries
// no payload at all.
type Details struct {
	Order     *OrderDetails     `json:"orderDetails,omitempty"`
	Service   *ServiceDetails   `json:"serviceDetails,omitempty"`
	Complaint *ComplaintDetails `json:"complaintDetails,omitempty"`
	Message   *MessageDetails   `json:"messageDetails,omitempty"`
	Alert     *AlertDetails     `json:"alertDetails,omitempty"`
}

type Request struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotelId"`
	RoomID     string    `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	Kind       Kind      `json:"type"`
	Message    string    `json:"message"`
	GuestPhone string    `json:"guestPhone"`
	Priority   Priority  `json:"priority"`
	Status     Status    `json:"status"`
	Details    Details   `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RequestPatch is the staff-side partial update. The derived message and the
// detail payload are immutable once classified.
type RequestPatch struct {
	Status   *Status   `json:"status"`
	Priority *Priority `json:"priority"`
}
