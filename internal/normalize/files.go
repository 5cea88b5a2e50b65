package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/coach-crossref/internal/types"
)

// LoadProgramDatabase loads the GITG school-years JSON file and uppercases
// its keys so lookups are consistent with cleaned school names.
func LoadProgramDatabase(path string) (types.ProgramYearDatabase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read program database %s", path),
			Cause:   err,
		}
	}

	var raw types.ProgramYearDatabase
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal program database JSON",
			Cause:   err,
		}
	}

	db := make(types.ProgramYearDatabase, len(raw))
	for school, years := range raw {
		db[CleanSchoolName(school)] = years
	}
	return db, nil
}

// LoadAliasTable loads the school aliases JSON file. Comment keys
// (prefixed with "_") are dropped here so consumers never see them.
func LoadAliasTable(path string) (types.AliasTable, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read alias table %s", path),
			Cause:   err,
		}
	}

	var raw types.AliasTable
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal alias table JSON",
			Cause:   err,
		}
	}

	aliases := make(types.AliasTable, len(raw))
	for canonical, list := range raw {
		if strings.HasPrefix(canonical, "_") {
			continue
		}
		aliases[canonical] = list
	}
	return aliases, nil
}

// NewSchoolNormalizerFromFiles builds a normalizer from the program
// database and alias table files. Either file failing to read or parse is
// fatal; the normalizer cannot be constructed without both sources.
func NewSchoolNormalizerFromFiles(dbPath, aliasesPath string) (*SchoolNormalizer, error) {
	db, err := LoadProgramDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	aliases, err := LoadAliasTable(aliasesPath)
	if err != nil {
		return nil, err
	}
	return NewSchoolNormalizer(db, aliases), nil
}
