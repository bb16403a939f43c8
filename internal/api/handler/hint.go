package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/albapepper/journeyman-data/internal/api/respond"
	"github.com/albapepper/journeyman-data/internal/provider/nhle"
	"github.com/albapepper/journeyman-data/internal/team"
)

type hintRequest struct {
	Teams       []string `json:"teams"`
	UsedPlayers []string `json:"used_players"`
}

// hintCandidate is the player selected to hint at, with the teams of the
// current game they cover.
type hintCandidate struct {
	player  playerValue
	covered int
}

// selectHint finds the unused player covering the most of the game's teams.
// Ties keep the first-encountered candidate, in request-team then
// player-list order.
func selectHint(doc *document, teams, usedPlayers []string) (hintCandidate, bool) {
	used := make(map[string]bool, len(usedPlayers))
	for _, id := range usedPlayers {
		used[id] = true
	}

	coverage := make(map[string]int)
	candidates := make([]playerValue, 0)
	seen := make(map[string]bool)

	for _, teamName := range teams {
		code, ok := team.CodeFromName(teamName)
		if !ok {
			continue
		}
		for _, p := range doc.Teams[code] {
			if p.id == "" || used[p.id] {
				continue
			}
			coverage[p.id]++
			if !seen[p.id] {
				seen[p.id] = true
				candidates = append(candidates, p)
			}
		}
	}

	best := hintCandidate{}
	found := false
	for _, p := range candidates {
		if coverage[p.id] > best.covered {
			best = hintCandidate{player: p, covered: coverage[p.id]}
			found = true
		}
	}
	return best, found
}

// teamsPlayedFor lists the franchise codes whose rosters include the player,
// in stable franchise order.
func teamsPlayedFor(doc *document, playerID string) []string {
	codes := make([]string, 0)
	for _, code := range team.CurrentCodes {
		for _, p := range doc.Teams[code] {
			if p.id == playerID {
				codes = append(codes, code)
				break
			}
		}
	}
	return codes
}

// buildHints assembles the hint lines for the selected player from the
// database document and the live landing details (which may be nil when the
// detail fetch failed; the hints degrade gracefully).
func buildHints(doc *document, candidate hintCandidate, teamCount int, landing *nhle.PlayerLanding) []string {
	hints := make([]string, 0, 8)

	if candidate.covered < teamCount {
		hints = append(hints, fmt.Sprintf("This player fits %d out of %d teams.", candidate.covered, teamCount))
	}

	if codes := teamsPlayedFor(doc, candidate.player.id); len(codes) > 0 {
		list := codes[0]
		for _, c := range codes[1:] {
			list += ", " + c
		}
		hints = append(hints, "Played for NHL teams: "+list)
	}

	if landing == nil {
		return hints
	}

	// Most recent NHL season with a points or save-percentage total.
	for i := len(landing.SeasonTotals) - 1; i >= 0; i-- {
		st := landing.SeasonTotals[i]
		if st.LeagueAbbrev != nil && *st.LeagueAbbrev != "NHL" {
			continue
		}
		if st.Points != nil {
			hints = append(hints, fmt.Sprintf("Had %d points in the most recent season.", *st.Points))
			break
		}
		if st.SavePctg != nil {
			hints = append(hints, fmt.Sprintf("Had a save percentage of %.3f in the most recent season.", *st.SavePctg))
			break
		}
	}

	if landing.BirthCountry != nil {
		hints = append(hints, "Born in "+*landing.BirthCountry)
	}

	if landing.HeightInInches != nil && landing.WeightInPounds != nil {
		hints = append(hints, fmt.Sprintf("Height/Weight: %d in / %d lbs",
			*landing.HeightInInches, *landing.WeightInPounds))
	}

	if dd := landing.DraftDetails; dd != nil {
		if dd.Year != nil && dd.Round != nil && dd.PickInRound != nil {
			hints = append(hints, fmt.Sprintf("Drafted in %d: Round %d, Pick %d",
				*dd.Year, *dd.Round, *dd.PickInRound))
		}
		if dd.TeamAbbrev != nil {
			hints = append(hints, "Drafted by "+*dd.TeamAbbrev)
		}
	}

	first, last := 0, 0
	for _, st := range landing.SeasonTotals {
		if st.LeagueAbbrev != nil && *st.LeagueAbbrev != "NHL" {
			continue
		}
		if st.Season == 0 {
			continue
		}
		if first == 0 {
			first = st.Season
		}
		last = st.Season
	}
	if first != 0 {
		hints = append(hints, fmt.Sprintf("Played in NHL from %s to %s",
			strconv.Itoa(first), strconv.Itoa(last)))
	}

	return hints
}

// GetHint picks an unused player fitting the most remaining teams and
// returns trivia hints about them.
func (h *Handler) GetHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON")
		return
	}
	if len(req.Teams) == 0 {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEAMS", "Missing teams array")
		return
	}

	doc, err := h.document(r.Context())
	if err != nil {
		h.logger.Error("Database load failed", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_ERROR", "Player database is unavailable")
		return
	}

	candidate, found := selectHint(doc, req.Teams, req.UsedPlayers)
	if !found {
		respond.WriteJSONObject(w, http.StatusOK, map[string]any{"hints": []string{}})
		return
	}

	// Live details enrich the hints; a failed fetch only skims them down.
	landing, err := h.nhl.PlayerLanding(r.Context(), candidate.player.id)
	if err != nil {
		h.logger.Warn("Player detail fetch failed", "player", candidate.player.id, "error", err)
		landing = nil
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"hints": buildHints(doc, candidate, len(req.Teams), landing),
	})
}
