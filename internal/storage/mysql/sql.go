package mysql

// Every tenant-scoped statement carries the hotel_id filter in the query
// itself; a row in a foreign tenant and a missing row are indistinguishable
// to callers.

const insertHotelSQL = `
INSERT INTO hotels (id, name, address, phone, email, settings, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const getHotelSQL = `
SELECT id, name, address, phone, email, settings, created_at, updated_at
FROM hotels WHERE id = ?
`

const updateHotelSQL = `
UPDATE hotels
SET name = ?, address = ?, phone = ?, email = ?, settings = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const listRoomsSQL = `
SELECT id, hotel_id, number, active, created_at, updated_at
FROM rooms WHERE hotel_id = ? ORDER BY number
`

const getRoomByNumberSQL = `
SELECT id, hotel_id, number, active, created_at, updated_at
FROM rooms WHERE hotel_id = ? AND number = ?
`

const insertRoomSQL = `
INSERT INTO rooms (id, hotel_id, number, active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

const updateRoomSQL = `
UPDATE rooms SET number = ?, active = ?, updated_at = CURRENT_TIMESTAMP
WHERE hotel_id = ? AND id = ?
`

const getRoomSQL = `
SELECT id, hotel_id, number, active, created_at, updated_at
FROM rooms WHERE hotel_id = ? AND id = ?
`

const deleteRoomSQL = `DELETE FROM rooms WHERE hotel_id = ? AND id = ?`

const insertStaffSQL = `
INSERT INTO staff_accounts (id, hotel_id, email, name, password_hash, role, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const getStaffByEmailSQL = `
SELECT id, hotel_id, email, name, password_hash, role, created_at
FROM staff_accounts WHERE email = ?
`

const listRequestsSQL = `
SELECT id, hotel_id, room_id, room_number, kind, message, guest_phone, priority, status, details, created_at, updated_at
FROM requests WHERE hotel_id = ?
ORDER BY created_at DESC, id DESC
`

const insertRequestSQL = `
INSERT INTO requests
  (id, hotel_id, room_id, room_number, kind, message, guest_phone, priority, status, details, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getRequestSQL = `
SELECT id, hotel_id, room_id, room_number, kind, message, guest_phone, priority, status, details, created_at, updated_at
FROM requests WHERE hotel_id = ? AND id = ?
`

// ---- menus ----

const listFoodSQL = `
SELECT id, hotel_id, name, description, category, price, available, created_at, updated_at
FROM food_items WHERE hotel_id = ?
`

const insertFoodSQL = `
INSERT INTO food_items (id, hotel_id, name, description, category, price, available, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateFoodSQL = `
UPDATE food_items SET name = ?, description = ?, category = ?, price = ?, available = ?, updated_at = CURRENT_TIMESTAMP
WHERE hotel_id = ? AND id = ?
`

const getFoodSQL = `
SELECT id, hotel_id, name, description, category, price, available, created_at, updated_at
FROM food_items WHERE hotel_id = ? AND id = ?
`

const deleteFoodSQL = `DELETE FROM food_items WHERE hotel_id = ? AND id = ?`

const listServicesSQL = `
SELECT id, hotel_id, name, description, estimated_time, available, created_at, updated_at
FROM service_items WHERE hotel_id = ?
`

const insertServiceSQL = `
INSERT INTO service_items (id, hotel_id, name, description, estimated_time, available, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const updateServiceSQL = `
UPDATE service_items SET name = ?, description = ?, estimated_time = ?, available = ?, updated_at = CURRENT_TIMESTAMP
WHERE hotel_id = ? AND id = ?
`

const getServiceSQL = `
SELECT id, hotel_id, name, description, estimated_time, available, created_at, updated_at
FROM service_items WHERE hotel_id = ? AND id = ?
`

const deleteServiceSQL = `DELETE FROM service_items WHERE hotel_id = ? AND id = ?`

const listComplaintsSQL = `
SELECT id, hotel_id, name, description, category, severity, available, created_at, updated_at
FROM complaint_items WHERE hotel_id = ?
`

const insertComplaintSQL = `
INSERT INTO complaint_items (id, hotel_id, name, description, category, severity, available, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateComplaintSQL = `
UPDATE complaint_items SET name = ?, description = ?, category = ?, severity = ?, available = ?, updated_at = CURRENT_TIMESTAMP
WHERE hotel_id = ? AND id = ?
`

const getComplaintSQL = `
SELECT id, hotel_id, name, description, category, severity, available, created_at, updated_at
FROM complaint_items WHERE hotel_id = ? AND id = ?
`

const deleteComplaintSQL = `DELETE FROM complaint_items WHERE hotel_id = ? AND id = ?`
