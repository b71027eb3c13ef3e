package propdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Profile groups the calibration properties written for one device
// provisioning run.
type Profile struct {
	ProfileID   string `json:"profile_id"`
	Name        string `json:"name"`
	DeviceModel string `json:"device_model"`
	Active      bool   `json:"active"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// Property is one named calibration value within a profile.
type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	UpdatedAt int64  `json:"updated_at"`
}

// CreateProfile inserts a new profile. A UUID is generated when ProfileID
// is empty. The first profile created in an empty database becomes active.
func (db *DB) CreateProfile(p *Profile) error {
	if p.ProfileID == "" {
		p.ProfileID = uuid.New().String()
	}
	now := time.Now().Unix()
	p.CreatedAt = now
	p.UpdatedAt = now

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM calibration_profiles`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count profiles: %w", err)
	}
	p.Active = count == 0

	active := 0
	if p.Active {
		active = 1
	}
	_, err := db.Exec(`
		INSERT INTO calibration_profiles (profile_id, name, device_model, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ProfileID, p.Name, p.DeviceModel, active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// ActivateProfile marks the given profile active and deactivates all
// others.
func (db *DB) ActivateProfile(profileID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE calibration_profiles SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("failed to deactivate profiles: %w", err)
	}

	res, err := tx.Exec(`
		UPDATE calibration_profiles SET active = 1, updated_at = ?
		WHERE profile_id = ?`, time.Now().Unix(), profileID)
	if err != nil {
		return fmt.Errorf("failed to activate profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check activation: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no such profile: %s", profileID)
	}

	return tx.Commit()
}

// ActiveProfile returns the active profile, or nil when none is active.
func (db *DB) ActiveProfile() (*Profile, error) {
	return db.scanProfile(db.QueryRow(`
		SELECT profile_id, name, device_model, active, created_at, updated_at
		FROM calibration_profiles WHERE active = 1`))
}

// GetProfile returns the profile with the given ID, or nil when absent.
func (db *DB) GetProfile(profileID string) (*Profile, error) {
	return db.scanProfile(db.QueryRow(`
		SELECT profile_id, name, device_model, active, created_at, updated_at
		FROM calibration_profiles WHERE profile_id = ?`, profileID))
}

func (db *DB) scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	var active int
	err := row.Scan(&p.ProfileID, &p.Name, &p.DeviceModel, &active, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	p.Active = active == 1
	return &p, nil
}

// ListProfiles returns all profiles ordered by creation time.
func (db *DB) ListProfiles() ([]Profile, error) {
	rows, err := db.Query(`
		SELECT profile_id, name, device_model, active, created_at, updated_at
		FROM calibration_profiles ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var active int
		if err := rows.Scan(&p.ProfileID, &p.Name, &p.DeviceModel, &active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		p.Active = active == 1
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SetProperty writes a property value into the given profile, replacing
// any existing value.
func (db *DB) SetProperty(profileID, name, value string) error {
	_, err := db.Exec(`
		INSERT INTO calibration_properties (profile_id, name, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(profile_id, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profileID, name, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set property %q: %w", name, err)
	}
	return nil
}

// DeleteProperty removes a property from the given profile. Deleting an
// absent property is not an error.
func (db *DB) DeleteProperty(profileID, name string) error {
	_, err := db.Exec(`
		DELETE FROM calibration_properties WHERE profile_id = ? AND name = ?`,
		profileID, name)
	if err != nil {
		return fmt.Errorf("failed to delete property %q: %w", name, err)
	}
	return nil
}

// Properties returns all properties of the given profile ordered by name.
func (db *DB) Properties(profileID string) ([]Property, error) {
	rows, err := db.Query(`
		SELECT name, value, updated_at FROM calibration_properties
		WHERE profile_id = ? ORDER BY name ASC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []Property
	for rows.Next() {
		var p Property
		if err := rows.Scan(&p.Name, &p.Value, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// Get implements props.Source against the active profile. Any lookup
// failure, including the absence of an active profile, degrades to the
// empty string so the resolver falls back to its compiled-in defaults.
func (db *DB) Get(name string) string {
	var value string
	err := db.QueryRow(`
		SELECT p.value
		FROM calibration_properties p
		JOIN calibration_profiles f ON f.profile_id = p.profile_id
		WHERE f.active = 1 AND p.name = ?`, name).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}
