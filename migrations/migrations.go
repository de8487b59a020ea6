// Package migrations embeds the SQL schema migrations for both supported
// database backends. Files follow the NNNN_name.sql convention consumed by
// the migration runner.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
