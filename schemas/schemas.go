// Package schemas хранит JSON-схемы событий, публикуемых сервисом.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS
