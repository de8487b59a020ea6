package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "dailyglow"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dailyglow/dailyglow.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dailyglow-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "dailyglow-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "app.dailyglow.tray"

	// RecentWindowMax caps how many recently viewed affirmations are excluded
	// from the next daily selection.
	RecentWindowMax = 7

	// RecentListMax caps the "recent affirmations" history kept in preferences.
	RecentListMax = 20

	// StreakMilestoneInterval is the streak length at which a celebration is
	// signaled (every N consecutive days).
	StreakMilestoneInterval = 7

	// WordMinLength is the exclusive minimum token length counted by the
	// journal word-frequency aggregation.
	WordMinLength = 4

	// WordTopN is the number of top words returned by the word-frequency
	// aggregation.
	WordTopN = 20

	// Settings defaults
	DefaultTimezone             = "Local"
	DefaultDailyCount           = 3
	DefaultReminderTime         = "08:00"
	DefaultNotificationsEnabled = true
	DefaultAutoBackup           = true
	DefaultInsightsWindow       = 30
)

// Session states for the TUI
const (
	StateToday SessionState = iota
	StateFavorites
	StateJournal
	StateInsights
	StateAddEntry
	StateConfirmDelete
)
