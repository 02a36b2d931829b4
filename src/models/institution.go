package models

// Institution is a partner institution in the static directory, seeded at
// startup and immutable thereafter.
type Institution struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	BrandColor  string `json:"brand_color"`
}
