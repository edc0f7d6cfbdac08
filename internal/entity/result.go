package entity

import "time"

type GameResult struct {
	ID             string     `json:"id"`
	BoardSize      int        `json:"board_size"`
	Players        []string   `json:"players"`
	Winner         string     `json:"winner,omitempty"`
	Draw           bool       `json:"draw"`
	CompletedTurns int        `json:"completed_turns"`
	Rounds         int        `json:"rounds"`
	Board          [][]string `json:"board"`
	FinishedAt     time.Time  `json:"finished_at"`
}
