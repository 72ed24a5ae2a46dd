package model

import "time"

// HistoryEntry represents one remembered generation result. Entries live
// only in server memory for the lifetime of the process and are never
// persisted.
type HistoryEntry struct {
	Password    string    `json:"password"`
	Length      int       `json:"length"`
	EntropyBits int       `json:"entropy_bits"`
	Strength    string    `json:"strength"`
	GeneratedAt time.Time `json:"generated_at"`
}

// HistoryResponse represents the recent-generations list, newest first.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}
