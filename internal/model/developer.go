package model

// Developer 开发商
type Developer struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Logo          *string `json:"logo"`
	Description   string  `json:"description"`
	ProjectsCount int     `json:"projects_count"`
	Image         string  `json:"image,omitempty"`
}
