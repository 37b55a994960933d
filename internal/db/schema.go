package db

import _ "embed"

//go:embed schema/postgres.sql
var PostgresSchema string

//go:embed schema/sqlite.sql
var sqliteSchema string
