package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExitStatus(t *testing.T) {
	assert.Equal(t, 1, run(nil))
	assert.Equal(t, 1, run([]string{"-strategy", "float", "x.json"}))
	assert.Equal(t, 1, run([]string{"-no-such-flag"}))

	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"k": 2, "1": {"base": "10", "value": "5"}, "2": {"base": "10", "value": "7"}}`), 0o600))

	// A failing document does not change the exit status.
	assert.Equal(t, 0, run([]string{"-strategy", "rational", good, filepath.Join(dir, "missing.json")}))
}
