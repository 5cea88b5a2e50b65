package normalize

import "strings"

// nflKeywords covers every current franchise nickname plus league names.
var nflKeywords = []string{
	"49ERS", "BEARS", "BENGALS", "BILLS", "BRONCOS", "BROWNS",
	"BUCCANEERS", "CARDINALS", "CHARGERS", "CHIEFS", "COLTS",
	"COMMANDERS", "COWBOYS", "DOLPHINS", "EAGLES", "FALCONS",
	"GIANTS", "JAGUARS", "JETS", "LIONS", "PACKERS", "PANTHERS",
	"PATRIOTS", "RAIDERS", "RAMS", "RAVENS", "SAINTS", "SEAHAWKS",
	"STEELERS", "TEXANS", "TITANS", "VIKINGS",
	"NFL", "NATIONAL FOOTBALL LEAGUE",
}

// nflCities are the market prefixes franchises are listed under.
var nflCities = []string{
	"ARIZONA", "ATLANTA", "BALTIMORE", "BUFFALO", "CAROLINA",
	"CHICAGO", "CINCINNATI", "CLEVELAND", "DALLAS", "DENVER",
	"DETROIT", "GREEN BAY", "HOUSTON", "INDIANAPOLIS", "JACKSONVILLE",
	"KANSAS CITY", "LAS VEGAS", "LOS ANGELES", "MIAMI", "MINNESOTA",
	"NEW ENGLAND", "NEW ORLEANS", "NEW YORK", "PHILADELPHIA",
	"PITTSBURGH", "SAN FRANCISCO", "SEATTLE", "TAMPA BAY",
	"TENNESSEE", "WASHINGTON",
}

// IsNFLTeam reports whether a name appears to be an NFL team. Pro teams
// are never in the program database, so callers skip these stints instead
// of counting them as normalization failures. Names containing UNIVERSITY
// or COLLEGE are never classified as NFL, so colleges whose nicknames
// collide with pro franchises (e.g. Dallas Baptist University Cowboys)
// pass through.
func IsNFLTeam(name string) bool {
	nameUpper := strings.ToUpper(name)

	if strings.Contains(nameUpper, "UNIVERSITY") || strings.Contains(nameUpper, "COLLEGE") {
		return false
	}

	for _, keyword := range nflKeywords {
		if strings.Contains(nameUpper, keyword) {
			return true
		}
	}

	// City prefix followed by a franchise nickname, e.g. "NEW ENGLAND PATRIOTS".
	for _, city := range nflCities {
		if strings.HasPrefix(nameUpper, city) {
			remainder := strings.TrimSpace(nameUpper[len(city):])
			for _, keyword := range nflKeywords {
				if strings.Contains(remainder, keyword) {
					return true
				}
			}
		}
	}

	return false
}
