package adapter

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mod/modfile"
	m "verdict.dev/pkg/verdict/internal/model"
)

// ErrSuiteNotFound is returned when a suite name does not map to a loadable suite.
var ErrSuiteNotFound = errors.New("suite not found")

const (
	testFileSuffix   = "_test.go"
	recursivePattern = "/..."
)

// SuiteResolverAdapter maps user-supplied suite names to executable suite handles.
type SuiteResolverAdapter interface {
	// Resolve maps a package directory or a single _test.go file to a handle.
	// Unknown names yield an error wrapping ErrSuiteNotFound.
	Resolve(ctx context.Context, name string) (m.SuiteHandle, error)

	// Discover lists every package with test functions under the given roots.
	// A root ending in "/..." is scanned recursively.
	Discover(ctx context.Context, roots []m.Path, exclude []string) ([]m.SuiteHandle, error)
}

// LocalSuiteResolverAdapter resolves suites on the local filesystem using
// go/parser for test discovery and go.mod for import paths.
type LocalSuiteResolverAdapter struct {
	fs      SourceFSAdapter
	workDir m.Path
}

// NewLocalSuiteResolverAdapter constructs a resolver that interprets relative
// suite names against workDir.
func NewLocalSuiteResolverAdapter(fs SourceFSAdapter, workDir m.Path) *LocalSuiteResolverAdapter {
	return &LocalSuiteResolverAdapter{fs: fs, workDir: workDir}
}

// Resolve maps name to a SuiteHandle.
func (r *LocalSuiteResolverAdapter) Resolve(ctx context.Context, name string) (m.SuiteHandle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return m.SuiteHandle{}, fmt.Errorf("%w: empty name", ErrSuiteNotFound)
	}

	target, err := r.absTarget(ctx, name)
	if err != nil {
		return m.SuiteHandle{}, fmt.Errorf("%w: %s: %w", ErrSuiteNotFound, name, err)
	}

	info, err := r.fs.FileInfo(ctx, target)
	if err != nil {
		return m.SuiteHandle{}, fmt.Errorf("%w: %s: %w", ErrSuiteNotFound, name, err)
	}

	var (
		dir   m.Path
		files []m.Path
	)

	switch {
	case info.IsDir():
		dir = target

		files, err = r.testFiles(ctx, dir)
		if err != nil {
			return m.SuiteHandle{}, fmt.Errorf("%w: %s: %w", ErrSuiteNotFound, name, err)
		}
	case strings.HasSuffix(string(target), testFileSuffix):
		dir = m.Path(filepath.Dir(string(target)))
		files = []m.Path{target}
	default:
		return m.SuiteHandle{}, fmt.Errorf("%w: %s is neither a package directory nor a %s file", ErrSuiteNotFound, name, testFileSuffix)
	}

	handle, err := r.buildHandle(ctx, strings.TrimSuffix(name, "/"), dir, files)
	if err != nil {
		return m.SuiteHandle{}, fmt.Errorf("%w: %s: %w", ErrSuiteNotFound, name, err)
	}

	slog.Debug("Resolved suite", "name", name, "importPath", handle.ImportPath, "tests", len(handle.Tests))

	return handle, nil
}

// Discover walks roots and returns one handle per package that declares tests.
func (r *LocalSuiteResolverAdapter) Discover(ctx context.Context, roots []m.Path, exclude []string) ([]m.SuiteHandle, error) {
	excludeRegexps, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []m.Path{m.Path("." + recursivePattern)}
	}

	seen := make(map[m.Path]struct{})

	var handles []m.SuiteHandle

	for _, root := range roots {
		rootStr := string(root)
		recursive := strings.HasSuffix(rootStr, recursivePattern)
		rootStr = strings.TrimSuffix(rootStr, recursivePattern)

		if rootStr == "" {
			rootStr = "."
		}

		rootPath, err := r.absTarget(ctx, rootStr)
		if err != nil {
			return nil, err
		}

		err = r.fs.Walk(ctx, rootPath, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() {
				return nil
			}

			dir := m.Path(path)
			if _, ok := seen[dir]; ok {
				return nil
			}

			seen[dir] = struct{}{}

			if excluded(path, excludeRegexps) {
				slog.Debug("Excluded directory", "path", path)
				return nil
			}

			handle, ok, err := r.discoverDir(ctx, dir)
			if err != nil {
				return err
			}

			if ok {
				handles = append(handles, handle)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover suites in %s: %w", root, err)
		}
	}

	sort.Slice(handles, func(i, j int) bool {
		return handles[i].Name < handles[j].Name
	})

	return handles, nil
}

func (r *LocalSuiteResolverAdapter) discoverDir(ctx context.Context, dir m.Path) (m.SuiteHandle, bool, error) {
	files, err := r.testFiles(ctx, dir)
	if err != nil {
		return m.SuiteHandle{}, false, err
	}

	if len(files) == 0 {
		return m.SuiteHandle{}, false, nil
	}

	name := string(dir)

	workDir, err := r.absTarget(ctx, ".")
	if err != nil {
		return m.SuiteHandle{}, false, err
	}

	if rel, err := r.fs.RelPath(ctx, workDir, dir); err == nil {
		name = "./" + filepath.ToSlash(string(rel))
		if rel == "." {
			name = "."
		}
	}

	handle, err := r.buildHandle(ctx, name, dir, files)
	if err != nil {
		// A directory without test functions is not a suite.
		if errors.Is(err, errNoTests) {
			return m.SuiteHandle{}, false, nil
		}

		return m.SuiteHandle{}, false, err
	}

	return handle, true, nil
}

var errNoTests = errors.New("no test functions found")

func (r *LocalSuiteResolverAdapter) buildHandle(ctx context.Context, name string, dir m.Path, files []m.Path) (m.SuiteHandle, error) {
	tests, err := r.testFunctions(ctx, files)
	if err != nil {
		return m.SuiteHandle{}, err
	}

	if len(tests) == 0 {
		return m.SuiteHandle{}, errNoTests
	}

	moduleRoot, err := r.fs.FindProjectRoot(ctx, dir)
	if err != nil {
		return m.SuiteHandle{}, err
	}

	importPath, err := r.importPath(ctx, moduleRoot, dir)
	if err != nil {
		return m.SuiteHandle{}, err
	}

	return m.SuiteHandle{
		Name:       name,
		Dir:        dir,
		ImportPath: importPath,
		ModuleRoot: moduleRoot,
		Tests:      tests,
	}, nil
}

// absTarget interprets name relative to the working directory.
func (r *LocalSuiteResolverAdapter) absTarget(ctx context.Context, name string) (m.Path, error) {
	target := name
	if !filepath.IsAbs(name) {
		target = filepath.Join(string(r.workDir), name)
	}

	return r.fs.AbsPath(ctx, m.Path(target))
}

func (r *LocalSuiteResolverAdapter) testFiles(ctx context.Context, dir m.Path) ([]m.Path, error) {
	entries, err := r.fs.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), testFileSuffix) {
			continue
		}

		files = append(files, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	return files, nil
}

// testFunctions parses files and returns their top-level Test functions in
// declaration order.
func (r *LocalSuiteResolverAdapter) testFunctions(ctx context.Context, files []m.Path) ([]string, error) {
	fileSet := token.NewFileSet()

	var tests []string

	for _, file := range files {
		src, err := r.fs.ReadFile(ctx, file)
		if err != nil {
			return nil, err
		}

		parsed, err := parser.ParseFile(fileSet, string(file), src, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		for _, decl := range parsed.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Recv != nil {
				continue
			}

			if isTestName(funcDecl.Name.Name) {
				tests = append(tests, funcDecl.Name.Name)
			}
		}
	}

	return tests, nil
}

// isTestName reports whether name follows the TestXxx convention go test uses.
func isTestName(name string) bool {
	if name == "TestMain" || !strings.HasPrefix(name, "Test") {
		return false
	}

	if len(name) == len("Test") {
		return true
	}

	r, _ := utf8.DecodeRuneInString(name[len("Test"):])

	return !unicode.IsLower(r)
}

func (r *LocalSuiteResolverAdapter) importPath(ctx context.Context, moduleRoot, dir m.Path) (string, error) {
	goModPath := m.Path(filepath.Join(string(moduleRoot), "go.mod"))

	content, err := r.fs.ReadFile(ctx, goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	modFile, err := modfile.ParseLax(string(goModPath), content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}

	if modFile.Module == nil || modFile.Module.Mod.Path == "" {
		return "", fmt.Errorf("could not find module name in %s", goModPath)
	}

	modulePath := modFile.Module.Mod.Path

	rel, err := r.fs.RelPath(ctx, moduleRoot, dir)
	if err != nil {
		return "", err
	}

	if rel == "." {
		return modulePath, nil
	}

	return modulePath + "/" + filepath.ToSlash(string(rel)), nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	regexps := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexps = append(regexps, re)
	}

	return regexps, nil
}

func excluded(path string, regexps []*regexp.Regexp) bool {
	for _, re := range regexps {
		if re.MatchString(filepath.ToSlash(path)) {
			return true
		}
	}

	return false
}
