// Package workspace provides README discovery for readmecheck commands. It
// analyzes directory structures to find the document a command should target,
// whether the current directory belongs to a single project or holds several
// project checkouts side by side.
package workspace

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ContextType represents the type of workspace detected.
type ContextType int

const (
	ContextNone      ContextType = iota
	ContextSingleDoc             // dir (or an ancestor) holds the README directly
	ContextMultiDoc              // immediate children each hold their own README
)

// maxParentWalk is the maximum number of parent directories to walk up when searching.
const maxParentWalk = 10

// DetectOption configures workspace detection behavior.
type DetectOption func(*detectOptions)

type detectOptions struct {
	fileName string // document file name to look for (default "README.md")
}

func defaultDetectOptions() detectOptions {
	return detectOptions{fileName: "README.md"}
}

// WithFileName overrides the document file name used during detection.
func WithFileName(name string) DetectOption {
	return func(o *detectOptions) {
		if name != "" {
			o.fileName = name
		}
	}
}

// DocInfo holds information about a discovered README.
type DocInfo struct {
	Name string // document title from the first level-1 heading, or the directory name
	Dir  string // absolute path to the directory containing the README
	Path string // absolute path to the README file
}

// Context represents the detected workspace.
type Context struct {
	Type     ContextType
	Root     string    // workspace root directory
	Docs     []DocInfo // discovered documents
	FileName string    // configured document file name (default "README.md")
}

// DetectContext analyzes the given directory to determine workspace type.
// It checks:
// 1. dir itself for the README → single document
// 2. Walk up parents for the README → single document (invoked from a subdirectory)
// 3. Scan immediate children of dir for READMEs → multi document
func DetectContext(dir string, opts ...DetectOption) (*Context, error) {
	o := defaultDetectOptions()
	for _, fn := range opts {
		fn(&o)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// 1. Check if the README exists in the given directory
	if info, ok := tryDoc(absDir, o.fileName); ok {
		return &Context{
			Type:     ContextSingleDoc,
			Root:     absDir,
			Docs:     []DocInfo{info},
			FileName: o.fileName,
		}, nil
	}

	// 2. Walk up parent directories looking for the README
	current := absDir
	for i := 0; i < maxParentWalk; i++ {
		parent := filepath.Dir(current)
		if parent == current {
			break // reached filesystem root
		}
		current = parent

		if info, ok := tryDoc(current, o.fileName); ok {
			return &Context{
				Type:     ContextSingleDoc,
				Root:     current,
				Docs:     []DocInfo{info},
				FileName: o.fileName,
			}, nil
		}
	}

	// 3. Scan immediate children of dir for READMEs
	docs := scanForDocs(absDir, o.fileName)
	if len(docs) > 0 {
		return &Context{
			Type:     ContextMultiDoc,
			Root:     absDir,
			Docs:     docs,
			FileName: o.fileName,
		}, nil
	}

	// Nothing found
	return &Context{
		Type:     ContextNone,
		Root:     absDir,
		Docs:     nil,
		FileName: o.fileName,
	}, nil
}

// FindDoc locates a named document in the workspace. The name matches either
// the document title or the directory holding it.
func FindDoc(ctx *Context, name string) (*DocInfo, error) {
	for i := range ctx.Docs {
		if ctx.Docs[i].Name == name || filepath.Base(ctx.Docs[i].Dir) == name {
			return &ctx.Docs[i], nil
		}
	}
	return nil, fmt.Errorf("document %q not found in workspace", name)
}

// tryDoc checks if dir contains the named document and builds its info.
func tryDoc(dir, fileName string) (DocInfo, bool) {
	path := filepath.Join(dir, fileName)
	if !isFile(path) {
		return DocInfo{}, false
	}

	name, err := readDocTitle(path)
	if err != nil || name == "" {
		// Fall back to directory name when no level-1 heading exists
		name = filepath.Base(dir)
	}

	return DocInfo{
		Name: name,
		Dir:  dir,
		Path: path,
	}, true
}

// scanForDocs scans immediate child directories of parentDir for the named document.
func scanForDocs(parentDir, fileName string) []DocInfo {
	entries, err := os.ReadDir(parentDir)
	if err != nil {
		return nil
	}

	var docs []DocInfo
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		childDir := filepath.Join(parentDir, entry.Name())
		if info, ok := tryDoc(childDir, fileName); ok {
			docs = append(docs, info)
		}
	}
	return docs
}

// readDocTitle extracts the first level-1 heading from a Markdown file.
func readDocTitle(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# ")), nil
		}
	}
	return "", scanner.Err()
}

// ExpandTargets resolves command-line target arguments into README file paths.
// Arguments containing glob metacharacters are expanded with doublestar (so
// patterns like projects/**/README.md work); matches and plain arguments that
// name a directory resolve to the named document inside it. Plain file
// arguments pass through untouched whether or not the file exists; missing
// files are the caller's concern. Duplicates are dropped, first mention wins.
func ExpandTargets(args []string, fileName string) ([]string, error) {
	var (
		targets []string
		seen    = map[string]bool{}
	)
	add := func(path string) {
		if isDir(path) {
			path = filepath.Join(path, fileName)
		}
		if !seen[path] {
			seen[path] = true
			targets = append(targets, path)
		}
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no targets match %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return targets, nil
}

// isFile returns true if path exists and is a regular file.
func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// isDir returns true if path exists and is a directory.
func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// LooksLikePath returns true if the string appears to be a file path rather
// than a document name. Exported so CLI packages can share the same heuristic
// without duplication.
func LooksLikePath(s string) bool {
	return strings.ContainsAny(s, `/\`) ||
		filepath.Ext(s) != "" ||
		s == "."
}
