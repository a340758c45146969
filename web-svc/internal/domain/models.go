package domain

// Optional fields are pointers; a nil or empty value is treated as absent
// when rendering.

type SocialMedia struct {
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
}

type BusinessInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Phone       *string      `json:"phone,omitempty"`
	Email       *string      `json:"email,omitempty"`
	SocialMedia *SocialMedia `json:"social_media,omitempty"`
	LogoURL     *string      `json:"logo_url,omitempty"`
	BannerURL   *string      `json:"banner_url,omitempty"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
	Available   bool    `json:"available"`
}

type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Schedule  *string `json:"schedule,omitempty"`
	Active    bool    `json:"active"`
}

// Value returns the string behind an optional field and whether it is present.
func Value(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}
