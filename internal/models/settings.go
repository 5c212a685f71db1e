package models

// SocialLinks holds the social/contact links rendered in the site navbar.
type SocialLinks struct {
	Youtube   string `json:"youtube"`
	Twitch    string `json:"twitch"`
	VK        string `json:"vk"`
	Telegram  string `json:"telegram"`
	Discord   string `json:"discord"`
	ContactUs string `json:"contactUs"`
}

// SiteSettings is the settings singleton. There is always exactly one
// instance; it is updated in place and never created or deleted.
type SiteSettings struct {
	SocialLinks     SocialLinks `json:"socialLinks"`
	OrderButtonLink string      `json:"orderButtonLink"`
}

// DefaultSettings returns the hardcoded ORCHID links used when the store
// has no settings yet or a backend read fails.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		SocialLinks: SocialLinks{
			Youtube:   "https://www.youtube.com/@ORCHIDCUP",
			Twitch:    "https://www.twitch.tv/orchidcup",
			VK:        "https://vk.com/orchidcybercup",
			Telegram:  "https://t.me/orchidcup",
			Discord:   "",
			ContactUs: "https://t.me/ORCHIDORG",
		},
		OrderButtonLink: "https://t.me/ORCHIDORG",
	}
}
