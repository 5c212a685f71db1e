package repository

import (
	"context"

	"orchid/internal/models"
)

type SettingRepository struct {
	store *ContentStore
}

func NewSettingRepository(store *ContentStore) *SettingRepository {
	return &SettingRepository{store: store}
}

// SocialLinksUpdate overrides individual links; unset ones are retained.
type SocialLinksUpdate struct {
	Youtube   *string `json:"youtube"`
	Twitch    *string `json:"twitch"`
	VK        *string `json:"vk"`
	Telegram  *string `json:"telegram"`
	Discord   *string `json:"discord"`
	ContactUs *string `json:"contactUs"`
}

// SettingsUpdate is a shallow merge at the top level with a nested merge
// for the socialLinks group.
type SettingsUpdate struct {
	SocialLinks     *SocialLinksUpdate `json:"socialLinks"`
	OrderButtonLink *string            `json:"orderButtonLink"`
}

// Get returns the stored settings, falling back to the defaults without
// persisting them. A blob written before the order button existed gets the
// default link backfilled.
func (r *SettingRepository) Get(ctx context.Context) *models.SiteSettings {
	data := r.store.Load(ctx)
	if data.Settings == nil {
		return models.DefaultSettings()
	}
	s := *data.Settings
	if s.OrderButtonLink == "" {
		s.OrderButtonLink = models.DefaultSettings().OrderButtonLink
	}
	return &s
}

func (r *SettingRepository) Update(ctx context.Context, upd SettingsUpdate) (*models.SiteSettings, error) {
	var merged models.SiteSettings
	err := r.store.Mutate(ctx, func(data *models.DataStore) (bool, error) {
		current := data.Settings
		if current == nil {
			current = models.DefaultSettings()
		}
		merged = *current
		if merged.OrderButtonLink == "" {
			merged.OrderButtonLink = models.DefaultSettings().OrderButtonLink
		}

		if upd.OrderButtonLink != nil {
			merged.OrderButtonLink = *upd.OrderButtonLink
		}
		if upd.SocialLinks != nil {
			l := upd.SocialLinks
			if l.Youtube != nil {
				merged.SocialLinks.Youtube = *l.Youtube
			}
			if l.Twitch != nil {
				merged.SocialLinks.Twitch = *l.Twitch
			}
			if l.VK != nil {
				merged.SocialLinks.VK = *l.VK
			}
			if l.Telegram != nil {
				merged.SocialLinks.Telegram = *l.Telegram
			}
			if l.Discord != nil {
				merged.SocialLinks.Discord = *l.Discord
			}
			if l.ContactUs != nil {
				merged.SocialLinks.ContactUs = *l.ContactUs
			}
		}

		data.Settings = &merged
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}
