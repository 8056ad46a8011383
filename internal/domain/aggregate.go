package domain

import "time"

// Aggregate describes a bundled archive of gazette files for a state or territory and year.
type Aggregate struct {
	TerritoryID *string   `json:"territory_id,omitempty"`
	StateCode   string    `json:"state_code"`
	URL         string    `json:"url_zip"`
	Year        int       `json:"year"`
	LastUpdated time.Time `json:"last_updated"`
	HashInfo    string    `json:"hash_info"`
	FileSizeMB  float64   `json:"file_size_mb"`
}
