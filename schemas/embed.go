// Package schemas provides the embedded SQL migrations for the movies table.
package schemas

import "embed"

// Migrations contains all SQL migration files, named for golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
