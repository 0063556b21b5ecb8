package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "verdict.dev/pkg/verdict/internal/model"
)

const calcTests = `package calc

import "testing"

func TestAdd(t *testing.T) {}

func TestSub(t *testing.T) {}

func TestMain(m *testing.M) {}

func Testable() {}

func helper() {}

type suite struct{}

func (suite) TestMethod(t *testing.T) {}
`

// newCalcModule lays out a small module with two test packages, a package
// without tests and a test file that declares no test functions.
func newCalcModule(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "go.mod"), "module example.com/calc\n\ngo 1.22\n")
	writeTestFile(t, filepath.Join(root, "calc_test.go"), calcTests)

	mustMkdir(t, filepath.Join(root, "sub"))
	writeTestFile(t, filepath.Join(root, "sub", "sub_test.go"), "package sub\n\nimport \"testing\"\n\nfunc TestNested(t *testing.T) {}\n")

	mustMkdir(t, filepath.Join(root, "empty"))
	writeTestFile(t, filepath.Join(root, "empty", "empty.go"), "package empty\n")

	mustMkdir(t, filepath.Join(root, "helpers"))
	writeTestFile(t, filepath.Join(root, "helpers", "helpers_test.go"), "package helpers\n\nfunc helper() {}\n")

	return root
}

func TestLocalSuiteResolverAdapter_Resolve(t *testing.T) {
	ctx := context.Background()
	root := newCalcModule(t)
	resolver := NewLocalSuiteResolverAdapter(NewLocalSourceFSAdapter(), m.Path(root))

	t.Run("package directory", func(t *testing.T) {
		handle, err := resolver.Resolve(ctx, ".")
		require.NoError(t, err)

		assert.Equal(t, ".", handle.Name)
		assert.Equal(t, "example.com/calc", handle.ImportPath)
		assert.Equal(t, m.Path(root), handle.ModuleRoot)
		assert.Equal(t, []string{"TestAdd", "TestSub"}, handle.Tests)
	})

	t.Run("nested directory with trailing slash", func(t *testing.T) {
		handle, err := resolver.Resolve(ctx, "sub/")
		require.NoError(t, err)

		assert.Equal(t, "sub", handle.Name)
		assert.Equal(t, "example.com/calc/sub", handle.ImportPath)
		assert.Equal(t, m.Path(filepath.Join(root, "sub")), handle.Dir)
		assert.Equal(t, []string{"TestNested"}, handle.Tests)
	})

	t.Run("single test file", func(t *testing.T) {
		handle, err := resolver.Resolve(ctx, "sub/sub_test.go")
		require.NoError(t, err)

		assert.Equal(t, "sub/sub_test.go", handle.Name)
		assert.Equal(t, "example.com/calc/sub", handle.ImportPath)
		assert.Equal(t, []string{"TestNested"}, handle.Tests)
	})

	t.Run("absolute path", func(t *testing.T) {
		handle, err := resolver.Resolve(ctx, filepath.Join(root, "sub"))
		require.NoError(t, err)

		assert.Equal(t, "example.com/calc/sub", handle.ImportPath)
	})

	for name, input := range map[string]string{
		"missing":          "does/not/exist",
		"no test files":    "empty",
		"no test funcs":    "helpers",
		"non test file":    "go.mod",
		"blank suite name": "  ",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := resolver.Resolve(ctx, input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSuiteNotFound)
		})
	}
}

func TestLocalSuiteResolverAdapter_Discover(t *testing.T) {
	ctx := context.Background()
	root := newCalcModule(t)
	resolver := NewLocalSuiteResolverAdapter(NewLocalSourceFSAdapter(), m.Path(root))

	t.Run("defaults to recursive scan of work dir", func(t *testing.T) {
		handles, err := resolver.Discover(ctx, nil, nil)
		require.NoError(t, err)

		require.Len(t, handles, 2)
		assert.Equal(t, ".", handles[0].Name)
		assert.Equal(t, "./sub", handles[1].Name)
		assert.Equal(t, "example.com/calc/sub", handles[1].ImportPath)
	})

	t.Run("non recursive root", func(t *testing.T) {
		handles, err := resolver.Discover(ctx, []m.Path{"."}, nil)
		require.NoError(t, err)

		require.Len(t, handles, 1)
		assert.Equal(t, ".", handles[0].Name)
	})

	t.Run("overlapping roots are deduplicated", func(t *testing.T) {
		handles, err := resolver.Discover(ctx, []m.Path{"./...", "./sub"}, nil)
		require.NoError(t, err)

		assert.Len(t, handles, 2)
	})

	t.Run("exclude pattern", func(t *testing.T) {
		handles, err := resolver.Discover(ctx, []m.Path{"./..."}, []string{"/sub$"})
		require.NoError(t, err)

		require.Len(t, handles, 1)
		assert.Equal(t, ".", handles[0].Name)
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		_, err := resolver.Discover(ctx, nil, []string{"("})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid exclude pattern")
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := resolver.Discover(ctx, []m.Path{"./nope/..."}, nil)
		require.Error(t, err)
	})
}

func TestLocalSuiteResolverAdapter_RelativeWorkDir(t *testing.T) {
	ctx := context.Background()
	root := newCalcModule(t)
	t.Chdir(root)

	wd, err := os.Getwd()
	require.NoError(t, err)

	resolver := NewLocalSuiteResolverAdapter(NewLocalSourceFSAdapter(), m.Path("."))

	handle, err := resolver.Resolve(ctx, "sub")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(string(handle.Dir)))
	assert.Equal(t, m.Path(filepath.Join(wd, "sub")), handle.Dir)
	assert.Equal(t, "example.com/calc/sub", handle.ImportPath)

	handles, err := resolver.Discover(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, handles, 2)
	assert.Equal(t, ".", handles[0].Name)
	assert.Equal(t, "./sub", handles[1].Name)
}

func TestIsTestName(t *testing.T) {
	tests := map[string]bool{
		"Test":         true,
		"TestAdd":      true,
		"Test_under":   true,
		"Test1":        true,
		"TestMain":     false,
		"Testable":     false,
		"BenchmarkAdd": false,
		"testAdd":      false,
	}

	for name, want := range tests {
		assert.Equal(t, want, isTestName(name), name)
	}
}
