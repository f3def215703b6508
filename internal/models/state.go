package models

// StateDB represents a state row.
type StateDB struct {
	StateID    int64  `db:"state_id"`
	StateName  string `db:"state_name"`
	Population int64  `db:"population"`
}

// StateStatsDB holds case totals summed over every district of a state.
type StateStatsDB struct {
	TotalCases  int64 `db:"total_cases"`
	TotalCured  int64 `db:"total_cured"`
	TotalActive int64 `db:"total_active"`
	TotalDeaths int64 `db:"total_deaths"`
}

// StateResponse is the JSON shape of a state.
// swagger:model StateResponse
type StateResponse struct {
	// example: 1
	StateID int64 `json:"stateId"`
	// example: Andaman and Nicobar Islands
	StateName string `json:"stateName"`
	// example: 380581
	Population int64 `json:"population"`
}

// StateStatsResponse is the JSON shape of state totals.
// swagger:model StateStatsResponse
type StateStatsResponse struct {
	TotalCases  int64 `json:"totalCases"`
	TotalCured  int64 `json:"totalCured"`
	TotalActive int64 `json:"totalActive"`
	TotalDeaths int64 `json:"totalDeaths"`
}

// NewStateResponse converts a state row to its JSON shape.
func NewStateResponse(s StateDB) StateResponse {
	return StateResponse{
		StateID:    s.StateID,
		StateName:  s.StateName,
		Population: s.Population,
	}
}

// NewStateStatsResponse converts state totals to their JSON shape.
func NewStateStatsResponse(s StateStatsDB) StateStatsResponse {
	return StateStatsResponse{
		TotalCases:  s.TotalCases,
		TotalCured:  s.TotalCured,
		TotalActive: s.TotalActive,
		TotalDeaths: s.TotalDeaths,
	}
}
