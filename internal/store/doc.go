// Package store persists catalog snapshots in SQLite.
//
// A snapshot is a catalog.Definition captured into a single database
// file, identified by a UUIDv7 assigned at save time. Snapshots let the
// formatter resolve names offline, without the YAML definition that
// produced them.
//
// The database uses WAL mode and a single-writer connection pool, and
// schema application is idempotent.
package store
