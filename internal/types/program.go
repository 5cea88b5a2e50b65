package types

// ProgramYearDatabase maps a canonical school name (uppercase) to the
// academic years ("YYYY-YYYY") the NMDP GITG program ran a drive there.
type ProgramYearDatabase map[string][]string

// AliasTable maps a canonical school name to the free-text variants a
// human might use for it. Keys starting with "_" are comment fields and
// are ignored by consumers.
type AliasTable map[string][]string
