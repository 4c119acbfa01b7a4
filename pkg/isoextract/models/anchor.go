package models

// Anchor is one located occurrence of a keyword.
type Anchor struct {
	// Page is the zero-based page index.
	Page int `json:"page"`
	// Rect is the keyword's bounding box, already rotation-corrected.
	Rect Rect `json:"rect"`
}
