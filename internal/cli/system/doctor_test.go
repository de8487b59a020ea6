package system

import (
	"testing"
)

func TestDoctorCmd_HealthyDatabase(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// Missing backups is only a warning, so a fresh database passes.
	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("doctor failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_MissingDatabase(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected doctor to fail when the database does not exist")
	}
}

func TestCheckClockTimezone(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := checkClockTimezone(ctx, false); err != nil {
		t.Errorf("clock check failed: %v", err)
	}
}
