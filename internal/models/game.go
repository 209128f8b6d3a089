package models

// Game represents one entry in the tracked library
type Game struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CoverImage  string `json:"coverImage,omitempty"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	IsFavorite  bool   `json:"isFavorite"`
}
