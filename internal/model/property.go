package model

// Property 房源
type Property struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Compound  *Compound  `json:"compound"`
	Developer *Developer `json:"developer"`
	Location  *Location  `json:"location"`

	PropertyType string    `json:"property_type"`
	Price        FlexFloat `json:"price"`
	Area         float64   `json:"area"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Description  string    `json:"description"`

	MainImage      string  `json:"main_image"`
	FloorPlanImage *string `json:"floor_plan_image"`
	MapImage       *string `json:"map_image"`

	IsNewLaunch bool `json:"is_new_launch"`
	IsFeatured  bool `json:"is_featured"`

	Amenities     []Amenity       `json:"amenities"`
	GalleryImages []PropertyImage `json:"gallery_images"`
}

// PropertyImage 房源图集里的一张图
type PropertyImage struct {
	ID       int64  `json:"id"`
	Property int64  `json:"property"`
	Image    string `json:"image"`
	AltText  string `json:"alt_text"`
}
