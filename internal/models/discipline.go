package models

// Discipline is a competitive category (game title) with a registration link.
// Videos and tournaments reference disciplines by Name, not by Id.
type Discipline struct {
	Id               int    `json:"Id"`
	Name             string `json:"Name"`
	RegistrationLink string `json:"RegistrationLink"`
}
