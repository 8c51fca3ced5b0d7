package store

// Schema DDL for the two collections. SQLite is the in-process index and
// query engine; the CSV files in the data directory remain the source of
// truth and are reloaded on every Attach.
const schemaSQL = `
CREATE TABLE vehicles (
    plate TEXT PRIMARY KEY,
    brand TEXT NOT NULL,
    model TEXT NOT NULL,
    year INTEGER NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT '',
    last_odometer INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    registered_at TEXT NOT NULL
);

CREATE TABLE services (
    service_id TEXT PRIMARY KEY,
    plate TEXT NOT NULL,
    date TEXT NOT NULL,
    odometer_at_service INTEGER NOT NULL DEFAULT 0,
    service_type TEXT NOT NULL,
    workshop TEXT NOT NULL DEFAULT '',
    cost REAL NOT NULL DEFAULT 0,
    technician TEXT NOT NULL DEFAULT '',
    remarks TEXT NOT NULL DEFAULT ''
);

CREATE INDEX idx_services_plate ON services(plate);
CREATE INDEX idx_services_date ON services(date);
`
