package repository

import (
	"context"

	"orchid/internal/models"
)

type DisciplineRepository struct {
	store *ContentStore
}

func NewDisciplineRepository(store *ContentStore) *DisciplineRepository {
	return &DisciplineRepository{store: store}
}

// DisciplineUpdate carries the fields a PUT may change. Nil means "keep".
type DisciplineUpdate struct {
	Name             *string `json:"Name"`
	RegistrationLink *string `json:"RegistrationLink"`
}

func (r *DisciplineRepository) List(ctx context.Context) []models.Discipline {
	return r.store.Load(ctx).Disciplines
}

func (r *DisciplineRepository) Add(ctx context.Context, d models.Discipline) (*models.Discipline, error) {
	var created models.Discipline
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		d.Id = 1
		for _, existing := range data.Disciplines {
			if existing.Id >= d.Id {
				d.Id = existing.Id + 1
			}
		}
		data.Disciplines = append(data.Disciplines, d)
		created = d
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DisciplineRepository) Update(ctx context.Context, id int, upd DisciplineUpdate) (*models.Discipline, error) {
	var updated models.Discipline
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		for i := range data.Disciplines {
			if data.Disciplines[i].Id != id {
				continue
			}
			d := &data.Disciplines[i]
			if upd.Name != nil {
				d.Name = *upd.Name
			}
			if upd.RegistrationLink != nil {
				d.RegistrationLink = *upd.RegistrationLink
			}
			updated = *d
			return true, nil
		}
		return false, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a discipline by Id. Tournaments and videos referencing the
// discipline by name are left untouched; there is no cascading delete.
func (r *DisciplineRepository) Delete(ctx context.Context, id int) (bool, error) {
	removed := false
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		for i := range data.Disciplines {
			if data.Disciplines[i].Id == id {
				data.Disciplines = append(data.Disciplines[:i], data.Disciplines[i+1:]...)
				removed = true
				return true, nil
			}
		}
		return false, nil
	})
	return removed, err
}
