package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/ft-calc/internal/app"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `[
  {"name": "Lettuce", "cost": 15, "time": 10, "sale_price": 30},
  {"name": "Leek", "cost": 1250, "time": 45, "sale_price": 1380}
]`

// testEnv is an isolated working directory with its own global config dir.
type testEnv struct {
	WorkDir   string
	GlobalDir string
	Catalog   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		WorkDir:   t.TempDir(),
		GlobalDir: t.TempDir(),
	}
	env.Catalog = env.writeFile(t, "crops.json", testCatalogJSON)
	return env
}

func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.WorkDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command against a fresh container.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	c := app.New(app.Config{WorkDir: e.WorkDir, GlobalConfDir: e.GlobalDir})
	t.Cleanup(func() { _ = c.Close() })

	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
