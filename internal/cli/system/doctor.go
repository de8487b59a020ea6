package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/dailyglow/dailyglow/internal/backup"
	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/migration"
	"github.com/dailyglow/dailyglow/internal/storage/sqlite"
	"github.com/dailyglow/dailyglow/internal/utils"
	"github.com/dailyglow/dailyglow/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Migrations complete (only if DB is reachable)
	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	// Check 4: Backups present (warning only, file stores only)
	if _, ok := ctx.Store.(*sqlite.Store); ok {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Backups present: OK\n")
		}
	} else {
		fmt.Printf("⊘ Backups present: SKIPPED (not a local database)\n")
	}

	// Check 5: Settings and preferences load (only if DB is reachable)
	if dbReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (database not reachable)\n")
	}

	// Check 6: Clock/timezone sanity
	if err := checkClockTimezone(ctx, dbReachable); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 7: Journal date formats (only if DB is reachable)
	if dbReachable {
		if err := checkJournalDates(ctx); err != nil {
			fmt.Printf("❌ Journal date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Journal date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Journal date formats: SKIPPED (database not reachable)\n")
	}

	// Check 8: Journal integrity (only if DB is reachable)
	if dbReachable {
		if err := checkJournalIntegrity(ctx); err != nil {
			fmt.Printf("❌ Journal integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Journal integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Journal integrity: SKIPPED (database not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func sqliteRunner(ctx *cli.Context) (*migration.Runner, bool, error) {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil, false, nil
	}
	db := sqliteStore.GetDB()
	if db == nil {
		return nil, true, fmt.Errorf("database connection is nil")
	}
	migrationFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, true, fmt.Errorf("failed to open migrations: %w", err)
	}
	return migration.NewRunner(db, migrationFS), true, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	runner, isSQLite, err := sqliteRunner(ctx)
	if err != nil {
		return err
	}
	if !isSQLite {
		// JSON and postgres stores validate their own schema on load
		return nil
	}

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	runner, isSQLite, err := sqliteRunner(ctx)
	if err != nil {
		return err
	}
	if !isSQLite {
		return nil
	}

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'dailyglow backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	if prefs.StreakCount < 0 {
		return fmt.Errorf("negative streak count: %d", prefs.StreakCount)
	}
	if prefs.ReminderTime != "" && !utils.ValidateClockFormat(prefs.ReminderTime) {
		return fmt.Errorf("invalid reminder time: %s", prefs.ReminderTime)
	}

	entries, err := ctx.Store.GetAllJournalEntries(true)
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}
	seen := make(map[string]bool)
	for _, entry := range entries {
		if seen[entry.ID] {
			return fmt.Errorf("duplicate journal entry ID found: %s", entry.ID)
		}
		seen[entry.ID] = true
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, dbReachable bool) error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if dbReachable {
		settings, err := ctx.Store.GetSettings()
		if err == nil && !utils.ValidateTimezone(settings.Timezone) {
			return fmt.Errorf("configured timezone is invalid: %s", settings.Timezone)
		}
	}
	return nil
}

func checkJournalDates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM journal_entries
		WHERE entry_date = '' OR created_at = ''
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check journal entry dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d journal entries with missing dates", invalidCount)
	}
	return nil
}

func checkJournalIntegrity(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllJournalEntries(true)
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}

	for _, entry := range entries {
		if entry.AffirmationID == "" {
			continue
		}
		if _, ok := ctx.Affirmations.Get(entry.AffirmationID); !ok {
			return fmt.Errorf("journal entry %s references unknown affirmation %s", entry.ID, entry.AffirmationID)
		}
	}
	return nil
}
