package domain

import "time"

// UnlockedContact records that the client spent a credit to reveal an
// artisan's private contact details. The artisan reference arrives populated
// with email and phone.
type UnlockedContact struct {
	ID         string    `json:"_id"`
	Artisan    Artisan   `json:"artisanId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}
