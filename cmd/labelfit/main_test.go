package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestAbbreviate(t *testing.T) {
	out, _, code := runCLI(t, "", "abbreviate", "--categories", "classifications", "Northwest", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "Northwest Blvd\n", out)

	out, _, code = runCLI(t, "", "abbreviate", "Saint", "Northwest", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "St NW Blvd\n", out)
}

func TestAbbreviate_BadCategory(t *testing.T) {
	_, stderr, code := runCLI(t, "", "abbreviate", "-C", "colors", "Main")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown category")
}

func TestFit(t *testing.T) {
	// Default estimating measurer: 8 per character, 16 per line.
	out, _, code := runCLI(t, "", "fit", "--width", "120", "--height", "16", "Northwest", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "Northwest Blvd\n", out)

	out, _, code = runCLI(t, "", "fit", "-w", "400", "-H", "16", "-v", "Northwest", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "Northwest Boulevard\ttier=none\tfits=true\n", out)

	out, _, code = runCLI(t, "", "fit", "-w", "8", "-H", "16", "-v", "Saint", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "St Blvd\ttier=abbreviation\tfits=false\n", out)
}

func TestFit_LegacyConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "labelfit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("legacy: true\n"), 0o644))

	out, _, code := runCLI(t, "", "--config", cfgPath, "fit", "-w", "120", "-H", "16", "Northwest", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "NW Blvd\n", out)
}

func TestStream(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "labelfit.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[measure]\nkind = \"cells\"\n"), 0o644))

	in := "Main Street\nNorthwest Boulevard\n\nSaint Northwest Boulevard\n"
	out, _, code := runCLI(t, in, "-c", cfgPath, "stream", "-w", "16", "-H", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "Main Street\nNorthwest Blvd\n\nSaint NW Blvd\n", out)
}

func TestCustomTable(t *testing.T) {
	table := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, os.WriteFile(table, []byte(`{
  "abbreviations": {},
  "directions": {},
  "classifications": {"boulevard": "Bd"}
}`), 0o644))

	out, _, code := runCLI(t, "", "--table", table, "abbreviate", "Northwest", "Boulevard")
	require.Equal(t, 0, code)
	assert.Equal(t, "Northwest Bd\n", out)
}

func TestMissingTableIsFatal(t *testing.T) {
	_, stderr, code := runCLI(t, "", "--table", filepath.Join(t.TempDir(), "missing.yaml"), "abbreviate", "Main")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "load abbreviation table")
}

func TestLookup(t *testing.T) {
	out, _, code := runCLI(t, "", "lookup", "Northwest")
	require.Equal(t, 0, code)
	assert.Equal(t, "Northwest\tNW\tdirections\n", out)

	out, _, code = runCLI(t, "", "lookup", "-C", "classifications", "Northwest")
	require.Equal(t, 0, code)
	assert.Equal(t, "Northwest\t(no match)\n", out)
}

func TestSchema(t *testing.T) {
	out, _, code := runCLI(t, "", "schema")
	require.Equal(t, 0, code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Abbreviation table", schema["title"])
	assert.Contains(t, schema, "properties")
}

func TestParseErrors(t *testing.T) {
	_, _, code := runCLI(t, "", "fit", "Main")
	assert.Equal(t, 2, code)

	_, _, code = runCLI(t, "", "nope")
	assert.Equal(t, 2, code)

	_, _, code = runCLI(t, "", "--log-level", "loud", "schema")
	assert.Equal(t, 1, code)
}

func TestHelp(t *testing.T) {
	out, _, code := runCLI(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "labelfit")
}
