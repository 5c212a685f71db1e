package models

// Tournament is an upcoming or past tournament listing.
type Tournament struct {
	Id      int      `json:"Id"`
	Name    string   `json:"Name"`
	Price   *float64 `json:"Price"`   // prize pool, null when not announced
	Date    string   `json:"Date"`    // calendar date as entered by the admin
	Game    string   `json:"Game"`    // discipline name, matched by value
	Comands *int     `json:"Comands"` // team count, null when open
}
