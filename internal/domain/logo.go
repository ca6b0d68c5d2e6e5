package domain

import "time"

// Logo representa el logo de un cliente mostrado en la página principal.
type Logo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url"`
	WebsiteURL string    `json:"website_url"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func (l Logo) ItemID() string   { return l.ID }
func (l Logo) ItemOrder() int   { return l.SortOrder }
func (l Logo) ItemActive() bool { return l.IsActive }
