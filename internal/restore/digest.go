// Package restore tracks whether a project's restore inputs changed since
// the last successful `dotnet restore`, letting the CLI skip redundant
// restores. The digest covers project files, lockfiles and NuGet
// configuration, hashed deterministically with blake3.
package restore

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/zeebo/blake3"
)

// restoreInputs are the files whose content determines restore results.
var restoreInputs = []string{
	"**.csproj",
	"**.fsproj",
	"**.vbproj",
	"**.sln",
	"**.props",
	"**.targets",
	"**packages.lock.json",
	"**nuget.config", // matched case-insensitively; NuGet.Config casing varies
	"**global.json",
}

// ignoredPaths are never part of the digest.
var ignoredPaths = []string{
	"bin/**",
	"obj/**",
	"**/bin/**",
	"**/obj/**",
	".git/**",
	"**/.git/**",
	"node_modules/**",
	"**/node_modules/**",
}

// Digester computes restore-input digests for a project tree.
type Digester struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewDigester compiles the default include and ignore patterns.
func NewDigester() *Digester {
	d := &Digester{}
	for _, p := range restoreInputs {
		d.includes = append(d.includes, glob.MustCompile(p, '/'))
	}
	for _, p := range ignoredPaths {
		d.ignores = append(d.ignores, glob.MustCompile(p, '/'))
	}
	return d
}

// Calculate walks root and returns the hex digest of all restore inputs.
// Files are hashed in sorted path order so the digest is deterministic.
func (d *Digester) Calculate(root string) (string, error) {
	files, err := d.collect(root)
	if err != nil {
		return "", err
	}
	sort.Strings(files)

	hasher := blake3.New()
	for _, rel := range files {
		// Path is part of the digest so renames are detected.
		_, _ = io.WriteString(hasher, rel)
		_, _ = hasher.Write([]byte{0})
		if err := hashFile(hasher, filepath.Join(root, rel)); err != nil {
			return "", fmt.Errorf("hashing %s: %w", rel, err)
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func (d *Digester) collect(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if entry.IsDir() {
			if d.ignored(rel + "/") {
				return fs.SkipDir
			}
			return nil
		}
		if d.ignored(rel) {
			return nil
		}
		for _, inc := range d.includes {
			if inc.Match(rel) || inc.Match(strings.ToLower(rel)) {
				files = append(files, rel)
				break
			}
		}
		return nil
	})
	return files, err
}

func (d *Digester) ignored(rel string) bool {
	for _, ig := range d.ignores {
		if ig.Match(rel) {
			return true
		}
	}
	return false
}

func hashFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
