package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comparisonFixture = `
name: id_equals_42
range_table:
  - alias: users
    columns: [id, name]
expr:
  kind: op
  op: 96
  args:
    - kind: var
      varno: 1
      attno: 1
    - kind: const
      type: 23
      value: 42
`

func runFmtCommand(t *testing.T, rootOpts *RootOptions, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewFmtCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestFmt_BuiltinCatalog(t *testing.T) {
	path := writeFixture(t, comparisonFixture)

	buf, err := runFmtCommand(t, &RootOptions{Format: "text"}, path)
	require.NoError(t, err)
	assert.Equal(t, "users.id = 42\n", buf.String())
}

func TestFmt_JSONOutput(t *testing.T) {
	path := writeFixture(t, comparisonFixture)

	buf, err := runFmtCommand(t, &RootOptions{Format: "json"}, path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "users.id = 42", data["text"])
	assert.Equal(t, "id_equals_42", data["name"])
}

func TestFmt_FixtureWithoutExprPrintsNothing(t *testing.T) {
	path := writeFixture(t, "range_table:\n  - alias: users\n    columns: [id]\n")

	buf, err := runFmtCommand(t, &RootOptions{Format: "text"}, path)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	// JSON mode reports the distinction explicitly.
	buf, err = runFmtCommand(t, &RootOptions{Format: "json"}, path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["empty"])
}

func TestFmt_CustomCatalog(t *testing.T) {
	fixturePath := writeFixture(t, `
range_table:
  - alias: t
    columns: [x]
expr:
  kind: op
  op: 12345
  args:
    - kind: var
      varno: 1
      attno: 1
    - kind: const
      type: 777
      value: hello
`)

	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
operators:
  - oid: 12345
    name: "~~"
types:
  - oid: 777
    name: citext
    output: text
`), 0644))

	buf, err := runFmtCommand(t, &RootOptions{Format: "text"}, fixturePath, "--catalog", catalogPath)
	require.NoError(t, err)
	assert.Equal(t, "t.x ~~ hello\n", buf.String())
}

func TestFmt_UnresolvedIdentifiersDegrade(t *testing.T) {
	// Same fixture, builtin catalog: neither oid 12345 nor type 777
	// resolve, so placeholders and the default datum form appear.
	fixturePath := writeFixture(t, `
range_table:
  - alias: t
    columns: [x]
expr:
  kind: op
  op: 12345
  args:
    - kind: var
      varno: 1
      attno: 1
    - kind: const
      type: 777
      value: hello
`)

	buf, err := runFmtCommand(t, &RootOptions{Format: "text"}, fixturePath)
	require.NoError(t, err)
	assert.Equal(t, "t.x (invalid operator) hello\n", buf.String())
}

func TestFmt_MissingFixture(t *testing.T) {
	_, err := runFmtCommand(t, &RootOptions{Format: "text"}, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFmt_BadCatalogPath(t *testing.T) {
	fixturePath := writeFixture(t, comparisonFixture)

	_, err := runFmtCommand(t, &RootOptions{Format: "text"}, fixturePath,
		"--catalog", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
