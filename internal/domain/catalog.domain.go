package domain

type Industry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

type Category struct {
	ID         int64  `json:"id"`
	IndustryID int64  `json:"industry_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	IsActive   bool   `json:"is_active"`
}
