package models

// Video is a portfolio entry shown in the tournament archive.
// JSON keys match the store/frontend wire format exactly.
type Video struct {
	Id          int    `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"description"`
	LinkYT      string `json:"linkyt"`
	BgLink      string `json:"bglink"`
	Game        string `json:"Game,omitempty"` // discipline name, optional for older entries
}
