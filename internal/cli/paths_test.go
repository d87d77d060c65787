package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsCmd(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "/alpha:/beta")

	stdout, _, err := execute(t, "paths", "--platform", "linux")

	require.NoError(t, err)
	assert.Equal(t, "/alpha\n/beta\n", stdout)
}

func TestPathsCmdEmptyVariable(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "")

	stdout, _, err := execute(t, "paths", "--platform", "linux")

	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestPathsCmdCheck(t *testing.T) {
	present := t.TempDir()
	absent := filepath.Join(present, "no-such-dir")
	t.Setenv("LD_LIBRARY_PATH", present+":"+absent)

	stdout, _, err := execute(t, "paths", "--platform", "linux", "--check")

	require.NoError(t, err)
	assert.Contains(t, stdout, "ok: ")
	assert.Contains(t, stdout, "missing: ")
	assert.Contains(t, stdout, present)
	assert.Contains(t, stdout, absent)
}

func TestPathsCmdRejectsArgs(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "paths", "extra")

	require.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	lib := filepath.Join(tmpDir, "libtcheck.so")
	require.NoError(t, os.WriteFile(lib, []byte("dummy"), 0o644))

	stdout, _, err := execute(t, "check", lib)

	require.NoError(t, err)

	abs, err := filepath.Abs(lib)
	require.NoError(t, err)
	assert.Equal(t, abs+"\n", stdout)
}

func TestCheckCmdFailures(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path    string
		wantErr string
	}{
		"missing file": {
			path:    filepath.Join(os.TempDir(), "libpath-test-absent.so"),
			wantErr: "failed to stat",
		},
		"directory": {
			path:    os.TempDir(),
			wantErr: "points to a directory",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "check", tc.path)

			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestCheckCmdMixedResults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	lib := filepath.Join(tmpDir, "libtmixed.so")
	require.NoError(t, os.WriteFile(lib, []byte("dummy"), 0o644))
	empty := filepath.Join(tmpDir, "libtempty.so")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	stdout, _, err := execute(t, "check", lib, empty)

	require.ErrorContains(t, err, "is empty")
	assert.Contains(t, stdout, "libtmixed.so", "valid paths print even when others fail")
}
