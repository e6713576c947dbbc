package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ashenBlade/pgexprfmt/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (meta, operators, functions, types)
const currentSchemaVersion = 1

// Store provides durable storage for catalog snapshots.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a snapshot database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1) // Single writer to avoid SQLITE_BUSY errors
	db.SetMaxIdleConns(1) // Keep one connection ready

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the snapshot content with the given definition and
// assigns a fresh UUIDv7 snapshot identity. The whole replacement runs
// in one transaction.
func (s *Store) Save(def *catalog.Definition) (snapshotID string, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"operators", "functions", "types"} {
		if _, err = tx.Exec("DELETE FROM " + table); err != nil {
			return "", fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, op := range def.Operators {
		if _, err = tx.Exec("INSERT INTO operators (oid, name) VALUES (?, ?)", op.OID, op.Name); err != nil {
			return "", fmt.Errorf("insert operator %d: %w", op.OID, err)
		}
	}
	for _, fn := range def.Functions {
		if _, err = tx.Exec("INSERT INTO functions (oid, name) VALUES (?, ?)", fn.OID, fn.Name); err != nil {
			return "", fmt.Errorf("insert function %d: %w", fn.OID, err)
		}
	}
	for _, typ := range def.Types {
		if _, err = tx.Exec("INSERT INTO types (oid, name, output) VALUES (?, ?, ?)", typ.OID, typ.Name, typ.Output); err != nil {
			return "", fmt.Errorf("insert type %d: %w", typ.OID, err)
		}
	}

	// UUIDv7 is time-sortable, which keeps snapshot identities ordered
	// by capture time when listed.
	snapshotID = uuid.Must(uuid.NewV7()).String()
	_, err = tx.Exec(`
		INSERT INTO meta (id, snapshot_id, schema_version) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET snapshot_id = excluded.snapshot_id,
		                               schema_version = excluded.schema_version`,
		snapshotID, currentSchemaVersion)
	if err != nil {
		return "", fmt.Errorf("update meta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return snapshotID, nil
}

// Load reads the snapshot content back into a definition.
// Rows come back ordered by OID for deterministic output.
func (s *Store) Load() (*catalog.Definition, error) {
	def := &catalog.Definition{}

	rows, err := s.db.Query("SELECT oid, name FROM operators ORDER BY oid")
	if err != nil {
		return nil, fmt.Errorf("query operators: %w", err)
	}
	for rows.Next() {
		var op catalog.OperatorDef
		if err := rows.Scan(&op.OID, &op.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		def.Operators = append(def.Operators, op)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("read operators: %w", err)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT oid, name FROM functions ORDER BY oid")
	if err != nil {
		return nil, fmt.Errorf("query functions: %w", err)
	}
	for rows.Next() {
		var fn catalog.FunctionDef
		if err := rows.Scan(&fn.OID, &fn.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan function: %w", err)
		}
		def.Functions = append(def.Functions, fn)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("read functions: %w", err)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT oid, name, output FROM types ORDER BY oid")
	if err != nil {
		return nil, fmt.Errorf("query types: %w", err)
	}
	for rows.Next() {
		var typ catalog.TypeDef
		if err := rows.Scan(&typ.OID, &typ.Name, &typ.Output); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan type: %w", err)
		}
		def.Types = append(def.Types, typ)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("read types: %w", err)
	}
	rows.Close()

	return def, nil
}

// SnapshotID returns the identity assigned by the last Save.
// Returns ok=false for a database that has never been saved to.
func (s *Store) SnapshotID() (string, bool, error) {
	var id string
	err := s.db.QueryRow("SELECT snapshot_id FROM meta WHERE id = 1").Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query meta: %w", err)
	}
	return id, true, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
