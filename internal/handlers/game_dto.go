package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/ddrozdov/nparcade/internal/game"
	"github.com/ddrozdov/nparcade/internal/puzzle"
	"github.com/ddrozdov/nparcade/internal/repository"
)

type CreateGameDTO struct {
	Kind puzzle.Kind `schema:"kind,required"`
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type HighscoreQueryDTO struct {
	Username string `schema:"username"`
	Kind     string `schema:"kind"`
}

func ParseHighscoreQueryDTO(src map[string][]string) (HighscoreQueryDTO, error) {
	var dto HighscoreQueryDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// Filter translates the query params into a repository filter.
func (dto HighscoreQueryDTO) Filter() (repository.HighscoreFilter, error) {
	var filter repository.HighscoreFilter
	if dto.Username != "" {
		filter.Username = &dto.Username
	}
	if dto.Kind != "" {
		kind, err := puzzle.ParseKind(dto.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &kind
	}
	return filter, nil
}

type InstanceDTO struct {
	Nodes    int             `json:"nodes,omitempty"`
	Points   []puzzle.Point  `json:"points,omitempty"`
	Edges    []puzzle.Edge   `json:"edges,omitempty"`
	Values   []int           `json:"values,omitempty"`
	VarCount int             `json:"var_count,omitempty"`
	Clauses  []puzzle.Clause `json:"clauses,omitempty"`
	Target   int             `json:"target"`
	Witness  *puzzle.Witness `json:"witness,omitempty"`
}

type SelectionDTO struct {
	Picked []int          `json:"picked,omitempty"`
	Path   []int          `json:"path,omitempty"`
	Truth  []bool         `json:"truth,omitempty"`
	Colors []puzzle.Color `json:"colors,omitempty"`
}

// RoundDTO is the player view of a session. The witness stays hidden
// until the round is over.
type RoundDTO struct {
	GameSessionId string       `json:"game_session_id"`
	Kind          string       `json:"kind"`
	Instance      InstanceDTO  `json:"instance"`
	Selection     SelectionDTO `json:"selection"`
	Conflict      *string      `json:"conflict,omitempty"`
	Feasible      bool         `json:"feasible"`
	Solved        int          `json:"solved"`
	Score         int          `json:"score"`
	Over          bool         `json:"over"`
	Revealed      bool         `json:"revealed"`
	StartedAt     int64        `json:"started_at"`
	EndedAt       *int64       `json:"ended_at,omitempty"`
}

func NewRoundDTO(session *repository.GameSession, rd *game.Round) *RoundDTO {
	inst := rd.Instance
	dto := &RoundDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Kind:          rd.Kind.String(),
		Instance: InstanceDTO{
			Nodes:    inst.Nodes,
			Points:   inst.Points,
			Edges:    inst.Edges,
			Values:   inst.Values,
			VarCount: inst.VarCount,
			Clauses:  inst.Clauses,
			Target:   inst.Target,
		},
		Selection: SelectionDTO{
			Picked: rd.Selection.Picked,
			Path:   rd.Selection.Path,
			Truth:  rd.Selection.Truth,
			Colors: rd.Selection.Colors,
		},
		Feasible:  puzzle.Feasible(inst, rd.Selection),
		Solved:    rd.Solved,
		Score:     rd.Score,
		Over:      rd.Over,
		Revealed:  rd.Revealed,
		StartedAt: session.StartedAt.Time.UnixMilli(),
	}
	if c := puzzle.FindConflict(inst, rd.Selection); c != nil {
		s := c.String()
		dto.Conflict = &s
	}
	if rd.Over {
		w := inst.Witness
		dto.Instance.Witness = &w
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}
