package repository

import (
	"context"
	"testing"

	"orchid/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetReturnsDefaultsWithoutPersisting(t *testing.T) {
	store, backend := newTestStore(t)
	repo := NewSettingRepository(store)

	got := repo.Get(context.Background())
	assert.Equal(t, models.DefaultSettings(), got)
	assert.Nil(t, backend.Raw(), "reading defaults must not write them")
}

func TestSettingsPartialMergeTouchesOnlyGivenLink(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewSettingRepository(store)
	ctx := context.Background()

	before := repo.Get(ctx)
	updated, err := repo.Update(ctx, SettingsUpdate{
		SocialLinks: &SocialLinksUpdate{VK: strptr("https://vk.com/new")},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://vk.com/new", updated.SocialLinks.VK)
	assert.Equal(t, before.SocialLinks.Youtube, updated.SocialLinks.Youtube)
	assert.Equal(t, before.SocialLinks.Twitch, updated.SocialLinks.Twitch)
	assert.Equal(t, before.SocialLinks.Telegram, updated.SocialLinks.Telegram)
	assert.Equal(t, before.SocialLinks.Discord, updated.SocialLinks.Discord)
	assert.Equal(t, before.SocialLinks.ContactUs, updated.SocialLinks.ContactUs)
	assert.Equal(t, before.OrderButtonLink, updated.OrderButtonLink)

	// The merge persisted: a fresh read sees it.
	assert.Equal(t, updated, repo.Get(ctx))
}

func TestSettingsTopLevelMerge(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewSettingRepository(store)
	ctx := context.Background()

	updated, err := repo.Update(ctx, SettingsUpdate{OrderButtonLink: strptr("https://t.me/neworders")})
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/neworders", updated.OrderButtonLink)
	assert.Equal(t, models.DefaultSettings().SocialLinks, updated.SocialLinks)
}

func TestSettingsBackfillsOrderButtonLink(t *testing.T) {
	store, backend := newTestStore(t)
	repo := NewSettingRepository(store)
	ctx := context.Background()

	// Blob written before the order button existed.
	legacy := models.DefaultStore()
	legacy.Settings.OrderButtonLink = ""
	require.NoError(t, backend.Save(ctx, legacy))

	got := repo.Get(ctx)
	assert.Equal(t, models.DefaultSettings().OrderButtonLink, got.OrderButtonLink)
}
