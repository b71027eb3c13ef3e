package propdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GhostdroidR/frameworks-native/internal/props"
)

// Compile-time check that the store satisfies the calibration source
// contract consumed by the metrics builders.
var _ props.Source = (*DB)(nil)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "calibration.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesSchema(t *testing.T) {
	db := openTestDB(t)

	// Reopening the same file must be a no-op for migrations.
	path := filepath.Join(t.TempDir(), "calibration.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	profiles, err := db.ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileLifecycle(t *testing.T) {
	db := openTestDB(t)

	first := &Profile{Name: "factory", DeviceModel: "vr-devkit-1"}
	require.NoError(t, db.CreateProfile(first))
	assert.NotEmpty(t, first.ProfileID)
	assert.True(t, first.Active, "first profile becomes active")

	second := &Profile{Name: "bench-recal"}
	require.NoError(t, db.CreateProfile(second))
	assert.False(t, second.Active, "later profiles start inactive")

	active, err := db.ActiveProfile()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ProfileID, active.ProfileID)

	require.NoError(t, db.ActivateProfile(second.ProfileID))

	active, err = db.ActiveProfile()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ProfileID, active.ProfileID)

	// The previous profile must have been deactivated.
	got, err := db.GetProfile(first.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	profiles, err := db.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestActivateUnknownProfile(t *testing.T) {
	db := openTestDB(t)
	err := db.ActivateProfile("no-such-id")
	assert.Error(t, err)
}

func TestGetProfileAbsent(t *testing.T) {
	db := openTestDB(t)
	p, err := db.GetProfile("missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPropertyCRUD(t *testing.T) {
	db := openTestDB(t)

	profile := &Profile{Name: "factory"}
	require.NoError(t, db.CreateProfile(profile))

	require.NoError(t, db.SetProperty(profile.ProfileID, "persist.dvr.lens_distance", "0.070"))
	require.NoError(t, db.SetProperty(profile.ProfileID, "persist.dvr.display_gap", "0.010"))

	// Overwrite
	require.NoError(t, db.SetProperty(profile.ProfileID, "persist.dvr.lens_distance", "0.071"))

	properties, err := db.Properties(profile.ProfileID)
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, "persist.dvr.display_gap", properties[0].Name)
	assert.Equal(t, "0.010", properties[0].Value)
	assert.Equal(t, "persist.dvr.lens_distance", properties[1].Name)
	assert.Equal(t, "0.071", properties[1].Value)

	require.NoError(t, db.DeleteProperty(profile.ProfileID, "persist.dvr.display_gap"))
	require.NoError(t, db.DeleteProperty(profile.ProfileID, "never-existed"))

	properties, err = db.Properties(profile.ProfileID)
	require.NoError(t, err)
	assert.Len(t, properties, 1)
}

func TestGetReadsActiveProfile(t *testing.T) {
	db := openTestDB(t)

	// No active profile: every lookup degrades to empty.
	assert.Equal(t, "", db.Get("persist.dvr.lens_distance"))

	factory := &Profile{Name: "factory"}
	require.NoError(t, db.CreateProfile(factory))
	require.NoError(t, db.SetProperty(factory.ProfileID, "persist.dvr.lens_distance", "0.064"))

	bench := &Profile{Name: "bench"}
	require.NoError(t, db.CreateProfile(bench))
	require.NoError(t, db.SetProperty(bench.ProfileID, "persist.dvr.lens_distance", "0.070"))

	assert.Equal(t, "0.064", db.Get("persist.dvr.lens_distance"))
	assert.Equal(t, "", db.Get("persist.dvr.unset"))

	require.NoError(t, db.ActivateProfile(bench.ProfileID))
	assert.Equal(t, "0.070", db.Get("persist.dvr.lens_distance"))
}
