// assets/embed.go
//
// Embedded data files shipped with the binary.
//   - practice.txt: a short code list for `mastermind play --practice`.
//   - schema.sql:   SQLite schema for stored code sets.

package assets

import "embed"

const (
	PracticeFile = "practice.txt"
	SchemaFile   = "schema.sql"
)

//go:embed practice.txt schema.sql
var FS embed.FS
