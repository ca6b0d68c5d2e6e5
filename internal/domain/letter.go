package domain

import "time"

// Letter representa una carta de agradecimiento o certificado emitido por
// un cliente, mostrado en la sección de reconocimientos.
type Letter struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Issuer     string     `json:"issuer"`
	FileURL    string     `json:"file_url"`
	PreviewURL string     `json:"preview_url"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
	SortOrder  int        `json:"sort_order"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (l Letter) ItemID() string   { return l.ID }
func (l Letter) ItemOrder() int   { return l.SortOrder }
func (l Letter) ItemActive() bool { return l.IsActive }
