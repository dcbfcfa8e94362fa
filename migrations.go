// Package landregistry holds assets shared by the binaries of the land registry service.
package landregistry

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
