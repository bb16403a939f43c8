// Package team provides the static NHL franchise identity tables: the set of
// currently active franchise codes, the historical codes of relocated or
// renamed predecessors, and the canonicalization mapping between them.
//
// Two independent lookups live here. The relocation table maps any team code
// (historical or current) to its current franchise code. The name table maps
// a franchise's full display name to its code; the player landing endpoint
// exposes display names, not codes, so the directory strategy needs it.
// They are kept as separate maps; one is code→code, the other name→code.
package team

// CurrentCodes lists every active NHL franchise code. These are the only
// valid keys in the consolidated output.
var CurrentCodes = []string{
	"ANA", "BOS", "BUF", "CGY", "CAR", "CHI", "COL", "CBJ", "DAL", "DET",
	"EDM", "FLA", "LAK", "MIN", "MTL", "NSH", "NJD", "NYI", "NYR", "OTT",
	"PHI", "PIT", "SJS", "SEA", "STL", "TBL", "TOR", "UTA", "VAN", "VGK",
	"WSH", "WPG",
}

// HistoricalCodes lists codes of defunct, relocated, or renamed franchises
// that the source API still serves roster data for.
var HistoricalCodes = []string{
	"ATL",  // Atlanta Thrashers → Winnipeg Jets
	"HFD",  // Hartford Whalers → Carolina Hurricanes
	"QUE",  // Quebec Nordiques → Colorado Avalanche
	"MNS",  // Minnesota North Stars → Dallas Stars
	"CLR",  // Colorado Rockies → New Jersey Devils
	"KCS",  // Kansas City Scouts → New Jersey Devils (via Colorado)
	"ATF",  // Atlanta Flames → Calgary Flames
	"WPG1", // Original Winnipeg Jets → Arizona → Utah
	"PHX",  // Phoenix Coyotes → Utah Hockey Club
	"ARI",  // Arizona Coyotes → Utah Hockey Club
	"MIG",  // Mighty Ducks → Anaheim Ducks
}

// relocations maps every known code, historical and current, to its
// current franchise code. Current codes map to themselves.
var relocations = buildRelocations()

func buildRelocations() map[string]string {
	m := map[string]string{
		"ATL":  "WPG", // Atlanta Thrashers → Winnipeg Jets (2011)
		"HFD":  "CAR", // Hartford Whalers → Carolina Hurricanes (1997)
		"QUE":  "COL", // Quebec Nordiques → Colorado Avalanche (1995)
		"MNS":  "DAL", // Minnesota North Stars → Dallas Stars (1993)
		"CLR":  "NJD", // Colorado Rockies → New Jersey Devils (1982)
		"KCS":  "NJD", // Kansas City Scouts → New Jersey Devils (1976)
		"ATF":  "CGY", // Atlanta Flames → Calgary Flames (1980)
		"WPG1": "UTA", // Original Winnipeg Jets → Arizona → Utah (1996)
		"PHX":  "UTA", // Phoenix Coyotes → Utah Hockey Club (2024)
		"ARI":  "UTA", // Arizona Coyotes → Utah Hockey Club (2024)
		"MIG":  "ANA", // Mighty Ducks → Anaheim Ducks (2006)
	}
	for _, code := range CurrentCodes {
		m[code] = code
	}
	return m
}

// Canonicalize maps a team code to its current franchise code. Current codes
// map to themselves. ok is false for codes outside the known universe; the
// caller is expected to warn and drop the offending data, not abort.
func Canonicalize(code string) (string, bool) {
	current, ok := relocations[code]
	return current, ok
}

// AllCodes returns current plus historical codes, the full crawl matrix for the
// per-team aggregation strategy.
func AllCodes() []string {
	codes := make([]string, 0, len(CurrentCodes)+len(HistoricalCodes))
	codes = append(codes, CurrentCodes...)
	codes = append(codes, HistoricalCodes...)
	return codes
}

// namesToCodes maps franchise display names, as the player landing endpoint
// spells them, to franchise codes.
var namesToCodes = map[string]string{
	"Anaheim Ducks":        "ANA",
	"Boston Bruins":        "BOS",
	"Buffalo Sabres":       "BUF",
	"Calgary Flames":       "CGY",
	"Carolina Hurricanes":  "CAR",
	"Chicago Blackhawks":   "CHI",
	"Colorado Avalanche":   "COL",
	"Columbus Blue Jackets": "CBJ",
	"Dallas Stars":         "DAL",
	"Detroit Red Wings":    "DET",
	"Edmonton Oilers":      "EDM",
	"Florida Panthers":     "FLA",
	"Los Angeles Kings":    "LAK",
	"Minnesota Wild":       "MIN",
	"Montreal Canadiens":   "MTL",
	"Nashville Predators":  "NSH",
	"New Jersey Devils":    "NJD",
	"New York Islanders":   "NYI",
	"New York Rangers":     "NYR",
	"Ottawa Senators":      "OTT",
	"Philadelphia Flyers":  "PHI",
	"Pittsburgh Penguins":  "PIT",
	"San Jose Sharks":      "SJS",
	"Seattle Kraken":       "SEA",
	"St. Louis Blues":      "STL",
	"Tampa Bay Lightning":  "TBL",
	"Toronto Maple Leafs":  "TOR",
	"Utah Hockey Club":     "UTA",
	"Vancouver Canucks":    "VAN",
	"Vegas Golden Knights": "VGK",
	"Washington Capitals":  "WSH",
	"Winnipeg Jets":        "WPG",
}

// CodeFromName maps a franchise display name to its code. ok is false for
// names outside the current franchise set (minor-league and international
// team names show up in season totals and are skipped by callers).
func CodeFromName(name string) (string, bool) {
	code, ok := namesToCodes[name]
	return code, ok
}

// CurrentNames returns every franchise display name, in CurrentCodes order.
func CurrentNames() []string {
	names := make([]string, 0, len(CurrentCodes))
	for _, code := range CurrentCodes {
		for name, c := range namesToCodes {
			if c == code {
				names = append(names, name)
				break
			}
		}
	}
	return names
}

// NameFromCode is the reverse of CodeFromName. Used by the read-side API to
// translate output keys back into the display names the game client shows.
func NameFromCode(code string) (string, bool) {
	for name, c := range namesToCodes {
		if c == code {
			return name, true
		}
	}
	return "", false
}
