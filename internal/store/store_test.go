package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashenBlade/pgexprfmt/internal/catalog"
)

func testDefinition() *catalog.Definition {
	return &catalog.Definition{
		Operators: []catalog.OperatorDef{
			{OID: 96, Name: "="},
			{OID: 551, Name: "+"},
		},
		Functions: []catalog.FunctionDef{
			{OID: 870, Name: "lower"},
		},
		Types: []catalog.TypeDef{
			{OID: 23, Name: "int4", Output: "int"},
			{OID: 25, Name: "text", Output: "text"},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Save(testDefinition())
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	require.NoError(t, err, "snapshot id must be a valid UUID")

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, testDefinition(), loaded)
}

func TestStore_LoadedDefinitionResolves(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Save(testDefinition())
	require.NoError(t, err)

	loaded, err := s.Load()
	require.NoError(t, err)

	m, err := loaded.Build()
	require.NoError(t, err)

	name, ok := m.OperatorName(96)
	require.True(t, ok)
	assert.Equal(t, "=", name)
}

func TestStore_SaveReplacesContent(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Save(testDefinition())
	require.NoError(t, err)

	second, err := s.Save(&catalog.Definition{
		Operators: []catalog.OperatorDef{{OID: 97, Name: "<"}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each save assigns a fresh snapshot id")

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Operators, 1)
	assert.Equal(t, uint32(97), loaded.Operators[0].OID)
	assert.Empty(t, loaded.Functions)
	assert.Empty(t, loaded.Types)

	id, ok, err := s.SnapshotID()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, id)
}

func TestStore_SnapshotIDBeforeSave(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.SnapshotID()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_EmptyDatabaseLoadsEmptyDefinition(t *testing.T) {
	s := openTestStore(t)

	def, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, def.Operators)
	assert.Empty(t, def.Functions)
	assert.Empty(t, def.Types)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.Save(testDefinition())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Schema application is idempotent and content survives reopen.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.SnapshotID()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, testDefinition(), loaded)
}
