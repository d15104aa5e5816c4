package models

// Entry represents a single diary entry owned by a user. Date, Image and
// Location are caller-supplied strings and are stored verbatim.
type Entry struct {
	ID          int    `json:"dairy_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	UserID      int    `json:"user_id"`
}
