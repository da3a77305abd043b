// Package factcrawler holds assets shared by every binary of the module.
package factcrawler

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
