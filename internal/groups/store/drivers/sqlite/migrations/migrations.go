package migrations

import "embed"

// Migrations holds the versioned schema, applied by golang-migrate through
// the iofs source driver.
//
//go:embed *.sql
var Migrations embed.FS
