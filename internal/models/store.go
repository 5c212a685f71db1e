package models

// DataStore is the whole content blob. It is always loaded and rewritten
// wholesale; the storage layer never persists partial updates.
type DataStore struct {
	Portfolio   []Video       `json:"portfolio"`
	Tournaments []Tournament  `json:"tournaments"`
	Disciplines []Discipline  `json:"disciplines"`
	Settings    *SiteSettings `json:"settings"`
}

// DefaultStore returns the empty blob written on first use and served when
// no backend is reachable.
func DefaultStore() *DataStore {
	return &DataStore{
		Portfolio:   []Video{},
		Tournaments: []Tournament{},
		Disciplines: []Discipline{},
		Settings:    DefaultSettings(),
	}
}
