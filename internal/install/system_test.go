package install

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/latex-install/internal/testutil"
)

func TestRealSystem_RunSelfTestExitCodes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "pass")
	testutil.WriteStubWithExit(t, dir, "fail", 3)
	sys := RealSystem{}

	code, err := sys.RunSelfTest(filepath.Join(dir, "pass"), "--test")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = sys.RunSelfTest(filepath.Join(dir, "fail"), "--test")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRealSystem_RunSelfTestPassesFlag(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubExpectArg(t, dir, "tool", "--test")
	sys := RealSystem{}

	code, err := sys.RunSelfTest(filepath.Join(dir, "tool"), "--test")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = sys.RunSelfTest(filepath.Join(dir, "tool"), "--other")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestRealSystem_RunSelfTestStartError(t *testing.T) {
	sys := RealSystem{}

	_, err := sys.RunSelfTest(filepath.Join(t.TempDir(), "missing"), "--test")

	assert.Error(t, err)
}

func TestRealSystem_LookPath(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "latex-split")
	t.Setenv("PATH", dir)
	sys := RealSystem{}

	found, err := sys.LookPath("latex-split")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "latex-split"), found)

	_, err = sys.LookPath("latex-merge")
	assert.Error(t, err)
}

func TestRealSystem_HasWriteAccess(t *testing.T) {
	sys := RealSystem{}

	assert.NoError(t, sys.HasWriteAccess(t.TempDir()))
}

func TestRealSystem_HasWriteAccessMissingDir(t *testing.T) {
	err := RealSystem{}.HasWriteAccess(filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRealSystem_HasWriteAccessReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	assert.Error(t, RealSystem{}.HasWriteAccess(dir))
}

func TestRealSystem_CopyAndChmod(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))
	sys := RealSystem{}

	require.NoError(t, sys.CopyFile(src, dst))
	require.NoError(t, sys.Chmod(dst, 0o755))

	info, err := sys.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
