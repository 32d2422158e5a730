// Package store provides the event source backends: JSON files, SQLite and
// PostgreSQL. Importing the package registers them with core/source under
// the names "json", "sqlite" and "postgres".
package store
