package repository

import (
	"context"
	"encoding/json"

	"orchid/internal/models"
)

type TournamentRepository struct {
	store *ContentStore
}

func NewTournamentRepository(store *ContentStore) *TournamentRepository {
	return &TournamentRepository{store: store}
}

// TournamentUpdate carries the fields a PUT may change. Nil means "keep".
// Price and Comands are nullable: an explicit null clears the stored value
// while an absent key keeps it, so they stay raw until merge time.
type TournamentUpdate struct {
	Name    *string         `json:"Name"`
	Price   json.RawMessage `json:"Price"`
	Date    *string         `json:"Date"`
	Game    *string         `json:"Game"`
	Comands json.RawMessage `json:"Comands"`
}

func (r *TournamentRepository) List(ctx context.Context) []models.Tournament {
	return r.store.Load(ctx).Tournaments
}

func (r *TournamentRepository) Add(ctx context.Context, t models.Tournament) (*models.Tournament, error) {
	var created models.Tournament
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		t.Id = 1
		for _, existing := range data.Tournaments {
			if existing.Id >= t.Id {
				t.Id = existing.Id + 1
			}
		}
		data.Tournaments = append(data.Tournaments, t)
		created = t
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *TournamentRepository) Update(ctx context.Context, id int, upd TournamentUpdate) (*models.Tournament, error) {
	var updated models.Tournament
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		for i := range data.Tournaments {
			if data.Tournaments[i].Id != id {
				continue
			}
			t := &data.Tournaments[i]
			if upd.Name != nil {
				t.Name = *upd.Name
			}
			if upd.Price != nil {
				var p *float64
				if err := json.Unmarshal(upd.Price, &p); err != nil {
					return false, err
				}
				t.Price = p
			}
			if upd.Date != nil {
				t.Date = *upd.Date
			}
			if upd.Game != nil {
				t.Game = *upd.Game
			}
			if upd.Comands != nil {
				var n *int
				if err := json.Unmarshal(upd.Comands, &n); err != nil {
					return false, err
				}
				t.Comands = n
			}
			updated = *t
			return true, nil
		}
		return false, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id int) (bool, error) {
	removed := false
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		for i := range data.Tournaments {
			if data.Tournaments[i].Id == id {
				data.Tournaments = append(data.Tournaments[:i], data.Tournaments[i+1:]...)
				removed = true
				return true, nil
			}
		}
		return false, nil
	})
	return removed, err
}
