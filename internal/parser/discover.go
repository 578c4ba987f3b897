package parser

import (
	"os"
	"path/filepath"
	"sort"
)

// SkillFileName is the canonical skill definition filename.
const SkillFileName = "SKILL.md"

// DiscoverSkillFiles finds all SKILL.md files under baseDir, following
// symlinks to directories. Results are absolute paths in sorted order
// so downstream output is deterministic. A missing baseDir is not an
// error and yields an empty slice.
func DiscoverSkillFiles(baseDir string) ([]string, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return []string{}, nil
	}

	var files []string
	visited := make(map[string]bool)
	walk(baseDir, visited, &files)

	sort.Strings(files)
	return files, nil
}

// walk recursively descends into dir, following symlinked directories
// and guarding against cycles via resolved-path tracking. Unreadable
// entries are skipped.
func walk(dir string, visited map[string]bool, files *[]string) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if visited[real] {
		return
	}
	visited[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path) // follows symlinks
		if err != nil {
			continue
		}
		if info.IsDir() {
			walk(path, visited, files)
			continue
		}
		if entry.Name() == SkillFileName {
			abs, err := filepath.Abs(path)
			if err != nil {
				continue
			}
			*files = append(*files, abs)
		}
	}
}

// HasSkillFile reports whether dir contains a SKILL.md file.
func HasSkillFile(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, SkillFileName))
	return err == nil && !info.IsDir()
}
