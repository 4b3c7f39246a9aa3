package models

// TripRequest holds the trip parameters submitted by the user. It is
// immutable once handed to the generation service; regeneration sends a fresh
// copy with the suggestion appended to the prompt.
type TripRequest struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Budget      int    `json:"budget"`
	People      int    `json:"people,omitempty"`
	Interests   string `json:"interests,omitempty"`
	Language    string `json:"language"`
}
