package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/reqq/packages/core/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, root, name, content string) *Store {
	t.Helper()
	path := filepath.Join(root, "envs", filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return NewStore(root, path)
}

func TestStoreName(t *testing.T) {
	root := t.TempDir()

	assert.Equal(t, "prod", NewStore(root, filepath.Join(root, "envs", "prod.json")).Name())
	assert.Equal(t, "team/qa", NewStore(root, filepath.Join(root, "envs", "team", "qa.yaml")).Name())
	assert.Equal(t, "local", NewStore(root, filepath.Join(root, "envs", "local.env")).Name())
}

func TestStoreLoad(t *testing.T) {
	root := t.TempDir()
	store := writeEnv(t, root, "dev.json", `{"host": "localhost"}`)

	assert.False(t, store.Loaded())
	require.NoError(t, store.Load())
	require.NoError(t, store.Load())
	assert.True(t, store.Loaded())

	text, err := store.Text()
	require.NoError(t, err)
	assert.Equal(t, `{"host": "localhost"}`, text)
}

func TestStoreLoadMissingFile(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, filepath.Join(root, "envs", "gone.json"))

	var readErr *source.ReadError
	require.ErrorAs(t, store.Load(), &readErr)
}

func TestStoreDataBeforeLoad(t *testing.T) {
	root := t.TempDir()
	store := writeEnv(t, root, "dev.json", `{"host": "localhost"}`)

	_, err := store.Data()
	assert.ErrorIs(t, err, source.ErrNotLoaded)
}

func TestStoreDataFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  Format
	}{
		{
			name:    "json",
			file:    "dev.json",
			content: `{"host": "example.com", "port": 8080, "tls": true, "db": {"name": "app"}}`,
			format:  FormatJSON,
		},
		{
			name:    "yaml",
			file:    "dev.yaml",
			content: "host: example.com\nport: 8080\ntls: true\ndb:\n  name: app\n",
			format:  FormatYAML,
		},
		{
			name:    "toml",
			file:    "dev.toml",
			content: "host = \"example.com\"\nport = 8080\ntls = true\n\n[db]\nname = \"app\"\n",
			format:  FormatTOML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := writeEnv(t, t.TempDir(), tt.file, tt.content)
			require.NoError(t, store.Load())
			assert.Equal(t, tt.format, store.Format())

			doc, err := store.Data()
			require.NoError(t, err)
			assert.Equal(t, "dev", doc.Name())

			host, ok := doc.Lookup([]string{"host"})
			require.True(t, ok)
			assert.Equal(t, "example.com", host.String())

			port, ok := doc.Lookup([]string{"port"})
			require.True(t, ok)
			assert.Equal(t, KindNumber, port.Kind)
			assert.Equal(t, "8080", port.String())

			tls, ok := doc.Lookup([]string{"tls"})
			require.True(t, ok)
			assert.Equal(t, "true", tls.String())

			name, ok := doc.Lookup([]string{"db", "name"})
			require.True(t, ok)
			assert.Equal(t, "app", name.String())
		})
	}
}

func TestStoreDotEnv(t *testing.T) {
	store := writeEnv(t, t.TempDir(), "local.env", "HOST=localhost\nTOKEN=\"abc def\"\n")
	require.NoError(t, store.Load())

	doc, err := store.Data()
	require.NoError(t, err)

	token, ok := doc.Lookup([]string{"TOKEN"})
	require.True(t, ok)
	assert.Equal(t, "abc def", token.String())
}

func TestStoreDataParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		line    int
	}{
		{name: "json syntax", file: "bad.json", content: "{\n  \"host\": \n}", line: 3},
		{name: "json array", file: "list.json", content: `["a", "b"]`},
		{name: "json null", file: "null.json", content: `null`},
		{name: "yaml list", file: "list.yaml", content: "- a\n- b\n"},
		{name: "toml syntax", file: "bad.toml", content: "host = "},
		{name: "dotenv", file: "bad.env", content: "HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := writeEnv(t, t.TempDir(), tt.file, tt.content)
			require.NoError(t, store.Load())

			_, err := store.Data()

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, store.Path(), parseErr.Path)
			assert.NotNil(t, parseErr.Err)
			if tt.line > 0 {
				assert.Equal(t, tt.line, parseErr.Line)
			}
		})
	}
}

func TestStoreDataDoesNotMutate(t *testing.T) {
	store := writeEnv(t, t.TempDir(), "dev.json", `{"a": 1}`)
	require.NoError(t, store.Load())

	before, err := store.Text()
	require.NoError(t, err)
	_, err = store.Data()
	require.NoError(t, err)
	_, err = store.Data()
	require.NoError(t, err)
	after, err := store.Text()
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
