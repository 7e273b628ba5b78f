package models

// Faculty represents a top-level academic division at the university
type Faculty struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
