package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/coach-crossref/internal/schemas"
	"github.com/jonathan/coach-crossref/internal/types"
)

// CombinedFileName is the single-file alternative to individual coach
// files within a school's coaches directory.
const CombinedFileName = "all_coaches.json"

// coachSchemaPath is resolved relative to the working directory; when the
// schema cannot be found, loading proceeds without schema validation.
const coachSchemaPath = "schemas/coach.schema.json"

// SchoolDirName converts a school name to its cache directory name:
// lowercase with spaces and hyphens replaced by underscores.
func SchoolDirName(school string) string {
	name := strings.ToLower(school)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// CoachesDir returns the coaches directory for a school under the cache base.
func CoachesDir(cacheBase, school string) string {
	return filepath.Join(cacheBase, SchoolDirName(school), "coaches")
}

// RosterPath returns the roster.json path for a school under the cache base.
func RosterPath(cacheBase, school string) string {
	return filepath.Join(cacheBase, SchoolDirName(school), "roster.json")
}

// LoadCoachSource reads one coach cache file. The file may hold a single
// coach object or a combined array of coaches; the distinction is resolved
// here so downstream code only ever sees a flat list. When the coach JSON
// schema is resolvable the document is validated against it first; every
// record is then struct-validated, so a malformed coach is rejected even
// when the schema file cannot be found.
func LoadCoachSource(path string) (*types.CoachSource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(coachSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, content); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	source := &types.CoachSource{Path: path}

	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(content, &source.Coaches); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to unmarshal combined coach file", Cause: err}
		}
	} else {
		var coach types.CoachRecord
		if err := json.Unmarshal(content, &coach); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to unmarshal coach file", Cause: err}
		}
		source.Coaches = []types.CoachRecord{coach}
	}

	for i := range source.Coaches {
		if err := source.Coaches[i].Validate(); err != nil {
			return nil, &LoadError{Path: path, Message: "invalid coach record", Cause: err}
		}
	}
	return source, nil
}

// SkippedFile records a cache file that could not be loaded during a batch
// scan. The batch itself continues past it.
type SkippedFile struct {
	Path   string
	Reason string
}

// LoadCoachDir loads every *.json file in a directory of coach files.
// A combined all_coaches.json takes precedence over individual files,
// matching how the research layer writes the cache. Unreadable or invalid
// files are skipped and reported, never fatal.
func LoadCoachDir(dir string) ([]types.CoachSource, []SkippedFile) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []SkippedFile{{Path: dir, Reason: err.Error()}}
	}

	names := make([]string, 0, len(entries))
	hasCombined := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if entry.Name() == CombinedFileName {
			hasCombined = true
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var sources []types.CoachSource
	var skipped []SkippedFile

	if hasCombined {
		path := filepath.Join(dir, CombinedFileName)
		source, err := LoadCoachSource(path)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Reason: err.Error()})
		} else {
			return []types.CoachSource{*source}, skipped
		}
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		source, err := LoadCoachSource(path)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		sources = append(sources, *source)
	}

	return sources, skipped
}

// LoadAllCoaches walks every school directory under the cache base and
// loads its coach files. Missing coaches directories are not an error;
// schools are visited in sorted order so results are reproducible.
func LoadAllCoaches(cacheBase string) ([]types.CoachSource, []SkippedFile) {
	entries, err := os.ReadDir(cacheBase)
	if err != nil {
		return nil, []SkippedFile{{Path: cacheBase, Reason: err.Error()}}
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)

	var sources []types.CoachSource
	var skipped []SkippedFile

	for _, dir := range dirs {
		coachesDir := filepath.Join(cacheBase, dir, "coaches")
		if _, err := os.Stat(coachesDir); os.IsNotExist(err) {
			continue
		}
		dirSources, dirSkipped := LoadCoachDir(coachesDir)
		sources = append(sources, dirSources...)
		skipped = append(skipped, dirSkipped...)
	}

	return sources, skipped
}
