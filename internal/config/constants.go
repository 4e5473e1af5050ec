package config

// DefaultDatabasePath is where the SQLite database lives unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./postroom.db"
