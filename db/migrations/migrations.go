package migrations

import "embed"

// FS embeds the SQL migration files in this directory; the iofs source
// driver reads them when migrations run on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects. Bump it together with
// every new migration pair.
const Version = 1
