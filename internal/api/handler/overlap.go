package handler

import (
	"encoding/json"
	"net/http"

	"github.com/albapepper/journeyman-data/internal/api/respond"
	"github.com/albapepper/journeyman-data/internal/team"
)

// overlapPlayer is one submitted player: either `{"name": ..., "id": ...}`
// or a bare name string.
type overlapPlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (p *overlapPlayer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		p.Name = s
		return nil
	}
	type plain overlapPlayer
	return json.Unmarshal(b, (*plain)(p))
}

type overlapRequest struct {
	Players []overlapPlayer `json:"players"`
	Teams   []string        `json:"teams"`
}

type playerScore struct {
	Name                string          `json:"name"`
	ID                  string          `json:"id,omitempty"`
	TotalTeamsPlayed    int             `json:"total_teams_played"`
	TeamsInCurrentGame  int             `json:"teams_in_current_game"`
	SpecializationRatio float64         `json:"specialization_ratio"`
	OverlapScore        float64         `json:"overlap_score"`
	PlayerInfo          json.RawMessage `json:"player_info,omitempty"`
}

type overlapResult struct {
	TotalOverlapScore float64       `json:"total_overlap_score"`
	PlayerCount       int           `json:"player_count"`
	AverageOverlap    float64       `json:"average_overlap"`
	Players           []playerScore `json:"players"`
}

// scoreOverlap rates each submitted player: how many of the game's teams
// they covered, weighted by how specialized they are to this game (covered
// teams over total franchises played for).
func scoreOverlap(doc *document, players []overlapPlayer, gameTeams []string) overlapResult {
	inGame := make(map[string]bool, len(gameTeams))
	for _, name := range gameTeams {
		inGame[name] = true
	}

	result := overlapResult{Players: make([]playerScore, 0, len(players))}
	for _, p := range players {
		if p.Name == "" && p.ID == "" {
			continue
		}

		score := playerScore{Name: p.Name, ID: p.ID}
		for code, teamPlayers := range doc.Teams {
			for _, dbPlayer := range teamPlayers {
				if !dbPlayer.matches(p.ID, p.Name) {
					continue
				}
				score.TotalTeamsPlayed++
				if score.PlayerInfo == nil {
					score.PlayerInfo = dbPlayer.raw
				}
				if name, ok := team.NameFromCode(code); ok && inGame[name] {
					score.TeamsInCurrentGame++
				}
				break
			}
		}

		if score.TotalTeamsPlayed > 0 {
			score.SpecializationRatio = float64(score.TeamsInCurrentGame) / float64(score.TotalTeamsPlayed)
		}
		score.OverlapScore = float64(score.TeamsInCurrentGame) * score.SpecializationRatio
		result.TotalOverlapScore += score.OverlapScore
		result.Players = append(result.Players, score)
	}

	result.PlayerCount = len(players)
	if len(players) > 0 {
		result.AverageOverlap = result.TotalOverlapScore / float64(len(players))
	}
	return result
}

// CalculateOverlap scores a submitted player set against a team set.
func (h *Handler) CalculateOverlap(w http.ResponseWriter, r *http.Request) {
	var req overlapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON")
		return
	}
	if len(req.Players) == 0 {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_PLAYERS", "Missing players array")
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

	respond.WriteJSONObject(w, http.StatusOK, scoreOverlap(doc, req.Players, req.Teams))
}
