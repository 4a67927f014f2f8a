package models

import "time"

// Conversion is one archived UCI-to-PGN run.
type Conversion struct {
	ID          int64     `json:"id"`
	Moves       []string  `json:"moves"`
	PGN         string    `json:"pgn"`
	Plies       int       `json:"plies"`
	ECOCode     string    `json:"eco,omitempty"`
	OpeningName string    `json:"opening,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConversionFilter struct {
	ECOCode  string
	MinPlies int
	Limit    int
	Offset   int
	OrderDir string
}
