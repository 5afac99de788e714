package domain

// ArtisanUser is the populated account reference embedded in artisan
// documents. Email and phone are private contact details: the backend only
// includes them in unlocked-contact responses and on the artisan's own
// profile.
type ArtisanUser struct {
	ID             string `json:"_id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Artisan is a craft profile. Rating and NumberOfReviews are aggregates
// computed by the backend.
type Artisan struct {
	ID              string      `json:"_id"`
	User            ArtisanUser `json:"userId"`
	CraftType       string      `json:"craftType"`
	Location        string      `json:"location"`
	Experience      int         `json:"experience"`
	Bio             string      `json:"bio,omitempty"`
	Skills          []string    `json:"skills,omitempty"`
	Rating          float64     `json:"rating"`
	NumberOfReviews int         `json:"numberOfReviews"`
	PortfolioImages []string    `json:"portfolioImages,omitempty"`
	IsVerified      bool        `json:"isVerified"`
}

// ArtisanProfileUpdate carries the editable fields of the caller's own craft
// profile.
type ArtisanProfileUpdate struct {
	CraftType  string   `json:"craftType,omitempty"`
	Location   string   `json:"location,omitempty"`
	Experience int      `json:"experience,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}
