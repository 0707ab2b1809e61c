package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/abdul-hamid-achik/reqq/packages/core/env"
	"github.com/abdul-hamid-achik/reqq/packages/core/request"
	"github.com/abdul-hamid-achik/reqq/packages/core/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoot writes files (slash-separated paths relative to the root) into a
// fresh directory and returns it.
func newRoot(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func sampleRoot(t *testing.T) string {
	return newRoot(t, map[string]string{
		"health":                "GET https://{{host}}/health",
		"users/get.http":        "GET https://{{host}}/users/{{user.id}}\nAuthorization: Bearer {{token}}",
		"users/create.http":     "POST https://{{host}}/users\n\n{\"name\": \"{{user.name}}\"}",
		"broken.http":           "GET https://{{host/x",
		"envs/dev.json":         `{"host": "localhost:8080", "token": "dev-token", "user": {"id": 1, "name": "ada"}}`,
		"envs/prod.yaml":        "host: api.example.com\ntoken: prod-token\nuser:\n  id: 42\n  name: grace\n",
		"envs/empty.json":       `{}`,
		"envs/broken.json":      `{"host": `,
		"envs/team/staging.env": "host=staging.example.com\ntoken=s\n",
		".reqq.yaml":            "defaultEnvironment: dev\n",
		".git/HEAD":             "ref: refs/heads/main\n",
	})
}

func TestNew(t *testing.T) {
	c, err := New(sampleRoot(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"broken", "health", "users/create", "users/get"}, c.RequestNames())
	assert.Equal(t, []string{"broken", "dev", "empty", "prod", "team/staging"}, c.EnvironmentNames())
}

func TestNewMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestPartitionInvariant(t *testing.T) {
	root := sampleRoot(t)
	c, err := New(root)
	require.NoError(t, err)

	envDir := filepath.Join(root, "envs") + string(filepath.Separator)
	seen := make(map[string]string)
	for _, r := range c.Requests() {
		assert.False(t, strings.HasPrefix(r.Path(), envDir))
		seen[r.Path()] = "request"
	}
	for _, e := range c.Environments() {
		assert.True(t, strings.HasPrefix(e.Path(), envDir))
		_, dup := seen[e.Path()]
		assert.False(t, dup, "%s appears in both collections", e.Path())
		seen[e.Path()] = "env"
	}
	assert.Len(t, seen, 9)
}

func TestNewWithScanner(t *testing.T) {
	root := filepath.FromSlash("/repo")
	c, err := New(root, WithScanner(func(string) ([]string, error) {
		return []string{
			filepath.FromSlash("/repo"),
			filepath.FromSlash("/repo/envs"),
			filepath.FromSlash("/repo/foo/bar"),
			filepath.FromSlash("/repo/envs/prod.json"),
		}, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"foo/bar"}, c.RequestNames())
	assert.Equal(t, []string{"prod"}, c.EnvironmentNames())
}

func TestNewDuplicateNames(t *testing.T) {
	c, err := New(newRoot(t, map[string]string{
		"users.http":    "first",
		"users.txt":     "second",
		"envs/dev.json": `{}`,
		"envs/dev.yaml": "a: 1",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"users", "users"}, c.RequestNames())

	out, err := c.Execute("users", "")
	require.NoError(t, err)
	assert.Equal(t, "first", out)

	store, err := c.Environment("dev")
	require.NoError(t, err)
	assert.Equal(t, env.FormatJSON, store.Format())
}

func TestNewWithRequestExtensions(t *testing.T) {
	c, err := New(newRoot(t, map[string]string{"users/get.http": "GET /"}),
		WithRequestExtensions([]string{".txt"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"users/get.http"}, c.RequestNames())
}

func TestExecute(t *testing.T) {
	c, err := New(sampleRoot(t))
	require.NoError(t, err)

	tests := []struct {
		name     string
		request  string
		env      string
		expected string
	}{
		{
			name:     "no environment is passthrough",
			request:  "health",
			expected: "GET https://{{host}}/health",
		},
		{
			name:     "json environment",
			request:  "users/get",
			env:      "dev",
			expected: "GET https://localhost:8080/users/1\nAuthorization: Bearer dev-token",
		},
		{
			name:     "yaml environment",
			request:  "users/create",
			env:      "prod",
			expected: "POST https://api.example.com/users\n\n{\"name\": \"grace\"}",
		},
		{
			name:     "nested environment name",
			request:  "health",
			env:      "team/staging",
			expected: "GET https://staging.example.com/health",
		},
		{
			name:     "malformed template without environment",
			request:  "broken",
			expected: "GET https://{{host/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Execute(tt.request, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExecuteRepeatable(t *testing.T) {
	c, err := New(sampleRoot(t))
	require.NoError(t, err)

	dev1, err := c.Execute("health", "dev")
	require.NoError(t, err)
	prod, err := c.Execute("health", "prod")
	require.NoError(t, err)
	dev2, err := c.Execute("health", "dev")
	require.NoError(t, err)

	assert.Equal(t, "GET https://localhost:8080/health", dev1)
	assert.Equal(t, "GET https://api.example.com/health", prod)
	assert.Equal(t, dev1, dev2)
}

func TestExecuteErrors(t *testing.T) {
	c, err := New(sampleRoot(t))
	require.NoError(t, err)

	t.Run("request not found", func(t *testing.T) {
		_, err := c.Execute("nonexistent", "")

		var notFound *RequestNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "nonexistent", notFound.Name)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := c.Execute("Health", "")

		var notFound *RequestNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("lookup uses names not paths", func(t *testing.T) {
		_, err := c.Execute("users/get.http", "")

		var notFound *RequestNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("environment not found", func(t *testing.T) {
		_, err := c.Execute("users/get", "nonexistent-env")

		var notFound *EnvNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "nonexistent-env", notFound.Name)

		tmpl, err := c.Request("users/get")
		require.NoError(t, err)
		assert.False(t, tmpl.Loaded(), "template must not be read when the environment is unknown")
	})

	t.Run("missing key", func(t *testing.T) {
		out, err := c.Execute("users/get", "empty")

		var missing *request.MissingKeyError
		require.ErrorAs(t, err, &missing)
		assert.Empty(t, out)
		assert.Equal(t, "empty", missing.Environment)
	})

	t.Run("malformed template", func(t *testing.T) {
		_, err := c.Execute("broken", "dev")

		var malformedErr *request.MalformedError
		assert.ErrorAs(t, err, &malformedErr)
	})

	t.Run("environment parse error", func(t *testing.T) {
		_, err := c.Execute("health", "broken")

		var parseErr *env.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("template read error", func(t *testing.T) {
		root := newRoot(t, map[string]string{"gone.http": "GET /"})
		c, err := New(root)
		require.NoError(t, err)
		require.NoError(t, os.Remove(filepath.Join(root, "gone.http")))

		_, err = c.Execute("gone", "")

		var readErr *source.ReadError
		assert.ErrorAs(t, err, &readErr)
	})
}

func TestWalkFiles(t *testing.T) {
	root := sampleRoot(t)

	files, err := WalkFiles(root)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}

	assert.True(t, sort.StringsAreSorted(rel))
	assert.NotContains(t, rel, ".reqq.yaml")
	assert.NotContains(t, rel, ".git/HEAD")
	assert.NotContains(t, rel, "envs")
	assert.Contains(t, rel, "envs/team/staging.env")
}

func TestWalkFilesNotADirectory(t *testing.T) {
	root := newRoot(t, map[string]string{"file": "x"})

	_, err := WalkFiles(filepath.Join(root, "file"))
	assert.Error(t, err)
}

func TestWalkFilesSkipsUnreadableDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := newRoot(t, map[string]string{
		"ok.http":         "GET /",
		"locked/get.http": "GET /",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	c, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, c.RequestNames())
}

func TestExecuteConcurrent(t *testing.T) {
	c, err := New(sampleRoot(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			envName := "dev"
			if i%2 == 1 {
				envName = "prod"
			}
			out, err := c.Execute("health", envName)
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	for i, out := range results {
		if i%2 == 1 {
			assert.Equal(t, "GET https://api.example.com/health", out)
		} else {
			assert.Equal(t, "GET https://localhost:8080/health", out)
		}
	}
}
