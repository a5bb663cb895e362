// Package migrations carries the versioned SQL files so binaries can migrate
// without a checkout next to them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
