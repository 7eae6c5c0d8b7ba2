package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"quill/internal/errors"
	"quill/internal/object"
)

// DefaultExtension is the file extension of Quill source files
const DefaultExtension = ".ql"

// CompileFunc turns module source text into a loaded module. Parsing
// and evaluation live outside this layer, so the host supplies the
// hook when it builds a FileResolver.
type CompileFunc func(ctx Context, source []byte, path string) (*object.Module, error)

// FileResolver resolves import paths against source files on disk. It
// searches a configurable list of directories for "<path><ext>",
// "<path>/index<ext>" and slash-nested variants, reads the first match
// and hands it to the compile hook. Every resolution hits the
// filesystem; loaded modules are not cached.
type FileResolver struct {
	searchPaths []string
	extension   string
	compile     CompileFunc
}

// NewFileResolver creates a file resolver with the default search
// paths and extension
func NewFileResolver(compile CompileFunc) *FileResolver {
	return &FileResolver{
		searchPaths: []string{".", "./lib", "./modules"},
		extension:   DefaultExtension,
		compile:     compile,
	}
}

// AddSearchPath appends a directory to the module search path
func (r *FileResolver) AddSearchPath(path string) {
	r.searchPaths = append(r.searchPaths, path)
}

// SetSearchPaths replaces the module search path
func (r *FileResolver) SetSearchPaths(paths ...string) {
	r.searchPaths = paths
}

// SearchPaths returns the current module search path
func (r *FileResolver) SearchPaths() []string {
	return r.searchPaths
}

// SetExtension replaces the source file extension, "" resets to the
// default
func (r *FileResolver) SetExtension(ext string) {
	if ext == "" {
		ext = DefaultExtension
	}
	r.extension = ext
}

// findModule locates the source file for an import path
func (r *FileResolver) findModule(path string) (string, bool) {
	// Direct file path
	if strings.HasSuffix(path, r.extension) {
		if fileExists(path) {
			return path, true
		}
		return "", false
	}

	for _, searchDir := range r.searchPaths {
		// Try as direct file
		candidate := filepath.Join(searchDir, path+r.extension)
		if fileExists(candidate) {
			return candidate, true
		}

		// Try as directory with an index file
		candidate = filepath.Join(searchDir, path, "index"+r.extension)
		if fileExists(candidate) {
			return candidate, true
		}

		// Try as nested module path (e.g. "collections/list")
		parts := strings.Split(path, "/")
		candidate = filepath.Join(searchDir, filepath.Join(parts...)+r.extension)
		if fileExists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// Resolve locates, reads and compiles the module source for path. A
// missing file yields a ModuleNotFoundError; compile failures are
// surfaced as-is.
func (r *FileResolver) Resolve(ctx Context, path string, pos errors.SourceLocation) (*object.Module, error) {
	resolvedPath, ok := r.findModule(path)
	if !ok {
		return nil, errors.NewModuleNotFound(path, pos)
	}

	source, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, errors.NewModuleNotFound(path, pos)
	}

	return r.compile(ctx, source, resolvedPath)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
