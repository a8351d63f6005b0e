package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"guestlink/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ApplySchema creates all tables. Idempotent.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func nullStr(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) error {
	settings, err := json.Marshal(h.Settings)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertHotelSQL,
		h.ID, h.Name, h.Address, h.Phone, h.Email, string(settings), h.CreatedAt, h.UpdatedAt)
	return err
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, id)

	var h domain.Hotel
	var settingsJSON []byte
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email, &settingsJSON, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	_ = json.Unmarshal(settingsJSON, &h.Settings)
	return h, nil
}

func (r *Repo) UpdateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	settings, err := json.Marshal(h.Settings)
	if err != nil {
		return domain.Hotel{}, err
	}
	if _, err := r.db.ExecContext(ctx, updateHotelSQL,
		h.Name, h.Address, h.Phone, h.Email, string(settings), h.ID); err != nil {
		return domain.Hotel{}, err
	}
	return r.GetHotel(ctx, h.ID)
}

// ---- rooms ----

func (r *Repo) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Number, &rm.Active, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) GetRoomByNumber(ctx context.Context, hotelID, number string) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx, getRoomByNumberSQL, hotelID, number)
	var rm domain.Room
	if err := row.Scan(&rm.ID, &rm.HotelID, &rm.Number, &rm.Active, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Room{}, domain.ErrNotFound
		}
		return domain.Room{}, err
	}
	return rm, nil
}

func (r *Repo) CreateRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.ID, rm.HotelID, rm.Number, rm.Active, rm.CreatedAt, rm.UpdatedAt)
	return err
}

func (r *Repo) UpdateRoom(ctx context.Context, rm domain.Room) (domain.Room, error) {
	if _, err := r.db.ExecContext(ctx, updateRoomSQL, rm.Number, rm.Active, rm.HotelID, rm.ID); err != nil {
		return domain.Room{}, err
	}
	row := r.db.QueryRowContext(ctx, getRoomSQL, rm.HotelID, rm.ID)
	var out domain.Room
	if err := row.Scan(&out.ID, &out.HotelID, &out.Number, &out.Active, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Room{}, domain.ErrNotFound
		}
		return domain.Room{}, err
	}
	return out, nil
}

func (r *Repo) DeleteRoom(ctx context.Context, hotelID, id string) error {
	res, err := r.db.ExecContext(ctx, deleteRoomSQL, hotelID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- staff ----

func (r *Repo) CreateStaff(ctx context.Context, s domain.StaffAccount) error {
	_, err := r.db.ExecContext(ctx, insertStaffSQL,
		s.ID, s.HotelID, s.Email, s.Name, s.PasswordHash, s.Role, s.CreatedAt)
	return err
}

func (r *Repo) GetStaffByEmail(ctx context.Context, email string) (domain.StaffAccount, error) {
	row := r.db.QueryRowContext(ctx, getStaffByEmailSQL, email)
	var s domain.StaffAccount
	if err := row.Scan(&s.ID, &s.HotelID, &s.Email, &s.Name, &s.PasswordHash, &s.Role, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.StaffAccount{}, domain.ErrNotFound
		}
		return domain.StaffAccount{}, err
	}
	return s, nil
}

// ---- requests ----

func (r *Repo) ListRequests(ctx context.Context, hotelID string) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx, listRequestsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *Repo) CreateRequest(ctx context.Context, req domain.Request) error {
	details, err := json.Marshal(req.Details)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertRequestSQL,
		req.ID, req.HotelID, req.RoomID, req.RoomNumber,
		string(req.Kind), req.Message, req.GuestPhone,
		string(req.Priority), string(req.Status), string(details),
		req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *Repo) UpdateRequest(ctx context.Context, hotelID, id string, p domain.RequestPatch) (domain.Request, error) {
	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*p.Status))
	}
	if p.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*p.Priority))
	}
	args = append(args, hotelID, id)
	q := "UPDATE requests SET " + strings.Join(sets, ", ") + " WHERE hotel_id = ? AND id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return domain.Request{}, err
	}
	// re-read under the same tenant filter; zero matches means not found
	// (or foreign tenant, indistinguishable by design)
	row := r.db.QueryRowContext(ctx, getRequestSQL, hotelID, id)
	req, err := scanRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Request{}, domain.ErrNotFound
		}
		return domain.Request{}, err
	}
	return req, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (domain.Request, error) {
	var req domain.Request
	var kind, priority, status string
	var detailsJSON []byte
	if err := row.Scan(
		&req.ID, &req.HotelID, &req.RoomID, &req.RoomNumber,
		&kind, &req.Message, &req.GuestPhone,
		&priority, &status, &detailsJSON,
		&req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return domain.Request{}, err
	}
	req.Kind = domain.Kind(kind)
	req.Priority = domain.Priority(priority)
	req.Status = domain.Status(status)
	_ = json.Unmarshal(detailsJSON, &req.Details)
	return req, nil
}

// ---- food menu ----

func (r *Repo) ListFood(ctx context.Context, hotelID string, availableOnly bool) ([]domain.FoodItem, error) {
	q := listFoodSQL
	if availableOnly {
		q += " AND available = 1"
	}
	q += " ORDER BY category, name"
	rows, err := r.db.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FoodItem
	for rows.Next() {
		var it domain.FoodItem
		var desc sql.NullString
		if err := rows.Scan(&it.ID, &it.HotelID, &it.Name, &desc, &it.Category, &it.Price, &it.Available, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Description = nullStr(desc)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) CreateFood(ctx context.Context, it domain.FoodItem) error {
	_, err := r.db.ExecContext(ctx, insertFoodSQL,
		it.ID, it.HotelID, it.Name, it.Description, it.Category, it.Price, it.Available, it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *Repo) UpdateFood(ctx context.Context, it domain.FoodItem) (domain.FoodItem, error) {
	if _, err := r.db.ExecContext(ctx, updateFoodSQL,
		it.Name, it.Description, it.Category, it.Price, it.Available, it.HotelID, it.ID); err != nil {
		return domain.FoodItem{}, err
	}
	row := r.db.QueryRowContext(ctx, getFoodSQL, it.HotelID, it.ID)
	var out domain.FoodItem
	var desc sql.NullString
	if err := row.Scan(&out.ID, &out.HotelID, &out.Name, &desc, &out.Category, &out.Price, &out.Available, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.FoodItem{}, domain.ErrNotFound
		}
		return domain.FoodItem{}, err
	}
	out.Description = nullStr(desc)
	return out, nil
}

func (r *Repo) DeleteFood(ctx context.Context, hotelID, id string) error {
	res, err := r.db.ExecContext(ctx, deleteFoodSQL, hotelID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- room-service menu ----

func (r *Repo) ListServices(ctx context.Context, hotelID string, availableOnly bool) ([]domain.ServiceItem, error) {
	q := listServicesSQL
	if availableOnly {
		q += " AND available = 1"
	}
	q += " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ServiceItem
	for rows.Next() {
		var it domain.ServiceItem
		var desc sql.NullString
		if err := rows.Scan(&it.ID, &it.HotelID, &it.Name, &desc, &it.EstimatedTime, &it.Available, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Description = nullStr(desc)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) CreateService(ctx context.Context, it domain.ServiceItem) error {
	_, err := r.db.ExecContext(ctx, insertServiceSQL,
		it.ID, it.HotelID, it.Name, it.Description, it.EstimatedTime, it.Available, it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *Repo) UpdateService(ctx context.Context, it domain.ServiceItem) (domain.ServiceItem, error) {
	if _, err := r.db.ExecContext(ctx, updateServiceSQL,
		it.Name, it.Description, it.EstimatedTime, it.Available, it.HotelID, it.ID); err != nil {
		return domain.ServiceItem{}, err
	}
	row := r.db.QueryRowContext(ctx, getServiceSQL, it.HotelID, it.ID)
	var out domain.ServiceItem
	var desc sql.NullString
	if err := row.Scan(&out.ID, &out.HotelID, &out.Name, &desc, &out.EstimatedTime, &out.Available, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.ServiceItem{}, domain.ErrNotFound
		}
		return domain.ServiceItem{}, err
	}
	out.Description = nullStr(desc)
	return out, nil
}

func (r *Repo) DeleteService(ctx context.Context, hotelID, id string) error {
	res, err := r.db.ExecContext(ctx, deleteServiceSQL, hotelID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- complaint menu ----

func (r *Repo) ListComplaints(ctx context.Context, hotelID string, availableOnly bool) ([]domain.ComplaintItem, error) {
	q := listComplaintsSQL
	if availableOnly {
		q += " AND available = 1"
	}
	q += " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ComplaintItem
	for rows.Next() {
		var it domain.ComplaintItem
		var desc sql.NullString
		var severity string
		if err := rows.Scan(&it.ID, &it.HotelID, &it.Name, &desc, &it.Category, &severity, &it.Available, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		it.Description = nullStr(desc)
		it.Severity = domain.Priority(severity)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) CreateComplaint(ctx context.Context, it domain.ComplaintItem) error {
	_, err := r.db.ExecContext(ctx, insertComplaintSQL,
		it.ID, it.HotelID, it.Name, it.Description, it.Category, string(it.Severity), it.Available, it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *Repo) UpdateComplaint(ctx context.Context, it domain.ComplaintItem) (domain.ComplaintItem, error) {
	if _, err := r.db.ExecContext(ctx, updateComplaintSQL,
		it.Name, it.Description, it.Category, string(it.Severity), it.Available, it.HotelID, it.ID); err != nil {
		return domain.ComplaintItem{}, err
	}
	row := r.db.QueryRowContext(ctx, getComplaintSQL, it.HotelID, it.ID)
	var out domain.ComplaintItem
	var desc sql.NullString
	var severity string
	if err := row.Scan(&out.ID, &out.HotelID, &out.Name, &desc, &out.Category, &severity, &out.Available, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.ComplaintItem{}, domain.ErrNotFound
		}
		return domain.ComplaintItem{}, err
	}
	out.Description = nullStr(desc)
	out.Severity = domain.Priority(severity)
	return out, nil
}

func (r *Repo) DeleteComplaint(ctx context.Context, hotelID, id string) error {
	res, err := r.db.ExecContext(ctx, deleteComplaintSQL, hotelID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
