package models

import "time"

// HomepageSettings is the editable homepage content block.
type HomepageSettings struct {
	Brand struct {
		Name    string `json:"name"`
		LogoURL string `json:"logoUrl"`
	} `json:"brand"`
	Contact struct {
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"contact"`
	Content struct {
		Heading         string `json:"heading"`
		Description     string `json:"description"`
		BodyDescription string `json:"bodyDescription"`
	} `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
