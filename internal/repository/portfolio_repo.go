package repository

import (
	"context"

	"orchid/internal/models"
)

type PortfolioRepository struct {
	store *ContentStore
}

func NewPortfolioRepository(store *ContentStore) *PortfolioRepository {
	return &PortfolioRepository{store: store}
}

// VideoUpdate carries the fields a PUT may change. Nil means "keep".
type VideoUpdate struct {
	Name        *string `json:"Name"`
	Description *string `json:"description"`
	LinkYT      *string `json:"linkyt"`
	BgLink      *string `json:"bglink"`
	Game        *string `json:"Game"`
}

func (r *PortfolioRepository) List(ctx context.Context) []models.Video {
	return r.store.Load(ctx).Portfolio
}

// Add appends v with a fresh Id (max existing + 1, ids are never reused)
// and persists the blob. Whatever Id the caller set is ignored.
func (r *PortfolioRepository) Add(ctx context.Context, v models.Video) (*models.Video, error) {
	var created models.Video
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		v.Id = 1
		for _, existing := range data.Portfolio {
			if existing.Id >= v.Id {
				v.Id = existing.Id + 1
			}
		}
		data.Portfolio = append(data.Portfolio, v)
		created = v
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, id int, upd VideoUpdate) (*models.Video, error) {
	var updated models.Video
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		for i := range data.Portfolio {
			if data.Portfolio[i].Id != id {
				continue
			}
			v := &data.Portfolio[i]
			if upd.Name != nil {
				v.Name = *upd.Name
			}
			if upd.Description != nil {
				v.Description = *upd.Description
			}
			if upd.LinkYT != nil {
				v.LinkYT = *upd.LinkYT
			}
			if upd.BgLink != nil {
				v.BgLink = *upd.BgLink
			}
			if upd.Game != nil {
				v.Game = *upd.Game
			}
			updated = *v
			return true, nil
		}
		return false, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete reports whether an entry was removed. A miss writes nothing.
func (r *PortfolioRepository) Delete(ctx context.Context, id int) (bool, error) {
	removed := false
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		for i := range data.Portfolio {
			if data.Portfolio[i].Id == id {
				data.Portfolio = append(data.Portfolio[:i], data.Portfolio[i+1:]...)
				removed = true
				return true, nil
			}
		}
		return false, nil
	})
	return removed, err
}
