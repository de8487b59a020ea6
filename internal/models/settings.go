package models

// Settings represents application-wide settings
type Settings struct {
	Timezone              string `json:"timezone"`                // IANA timezone name, or "Local" for the system timezone
	AutoBackup            bool   `json:"auto_backup"`             // whether mutating commands create a rotating backup
	DefaultInsightsWindow int    `json:"default_insights_window"` // default journal analytics window in days (0 = all time)
}
