package mysql

// Schema holds the table definitions in dependency order. The seeder and the
// integration tests apply it; production runs it once at provisioning time.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
  id         CHAR(36) PRIMARY KEY,
  name       VARCHAR(255) NOT NULL,
  address    VARCHAR(512) NOT NULL DEFAULT '',
  phone      VARCHAR(32)  NOT NULL DEFAULT '',
  email      VARCHAR(255) NOT NULL DEFAULT '',
  settings   JSON NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS rooms (
  id         CHAR(36) PRIMARY KEY,
  hotel_id   CHAR(36) NOT NULL,
  number     VARCHAR(32) NOT NULL,
  active     TINYINT(1) NOT NULL DEFAULT 1,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  UNIQUE KEY uq_rooms_hotel_number (hotel_id, number),
  CONSTRAINT fk_rooms_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)`,
	`CREATE TABLE IF NOT EXISTS staff_accounts (
  id            CHAR(36) PRIMARY KEY,
  hotel_id      CHAR(36) NOT NULL,
  email         VARCHAR(255) NOT NULL,
  name          VARCHAR(255) NOT NULL DEFAULT '',
  password_hash VARCHAR(255) NOT NULL,
  role          VARCHAR(16) NOT NULL DEFAULT 'staff',
  created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE KEY uq_staff_email (email),
  CONSTRAINT fk_staff_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)`,
	`CREATE TABLE IF NOT EXISTS requests (
  id          CHAR(36) PRIMARY KEY,
  hotel_id    CHAR(36) NOT NULL,
  room_id     CHAR(36) NOT NULL,
  room_number VARCHAR(32) NOT NULL,
  kind        VARCHAR(32) NOT NULL,
  message     TEXT NOT NULL,
  guest_phone VARCHAR(32) NOT NULL DEFAULT '',
  priority    VARCHAR(16) NOT NULL DEFAULT 'medium',
  status      VARCHAR(16) NOT NULL DEFAULT 'pending',
  details     JSON NOT NULL,
  created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY idx_requests_hotel_created (hotel_id, created_at),
  CONSTRAINT fk_requests_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id),
  CONSTRAINT fk_requests_room FOREIGN KEY (room_id) REFERENCES rooms(id)
)`,
	`CREATE TABLE IF NOT EXISTS food_items (
  id          CHAR(36) PRIMARY KEY,
  hotel_id    CHAR(36) NOT NULL,
  name        VARCHAR(255) NOT NULL,
  description TEXT,
  category    VARCHAR(64) NOT NULL DEFAULT '',
  price       DECIMAL(10,2) NOT NULL DEFAULT 0,
  available   TINYINT(1) NOT NULL DEFAULT 1,
  created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY idx_food_hotel (hotel_id),
  CONSTRAINT fk_food_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)`,
	`CREATE TABLE IF NOT EXISTS service_items (
  id             CHAR(36) PRIMARY KEY,
  hotel_id       CHAR(36) NOT NULL,
  name           VARCHAR(255) NOT NULL,
  description    TEXT,
  estimated_time VARCHAR(64) NOT NULL DEFAULT '',
  available      TINYINT(1) NOT NULL DEFAULT 1,
  created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY idx_service_hotel (hotel_id),
  CONSTRAINT fk_service_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)`,
	`CREATE TABLE IF NOT EXISTS complaint_items (
  id          CHAR(36) PRIMARY KEY,
  hotel_id    CHAR(36) NOT NULL,
  name        VARCHAR(255) NOT NULL,
  description TEXT,
  category    VARCHAR(64) NOT NULL DEFAULT '',
  severity    VARCHAR(16) NOT NULL DEFAULT 'medium',
  available   TINYINT(1) NOT NULL DEFAULT 1,
  created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY idx_complaint_hotel (hotel_id),
  CONSTRAINT fk_complaint_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)`,
}
