package model

// 基础字典类数据，全部由上游 API 持有，本地只保留内存副本

// Location 区域/地段
type Location struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	MapURL *string `json:"map_url"`
}

// Amenity 配套设施 (泳池、健身房等)
type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Partner 合作品牌
type Partner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Testimonial 客户评价
// client_photo / client_avatar、testimonial_text / quote 是上游历史遗留的别名字段
type Testimonial struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"client_name"`
	ClientPhoto     string `json:"client_photo,omitempty"`
	ClientAvatar    string `json:"client_avatar,omitempty"`
	TestimonialText string `json:"testimonial_text"`
	Quote           string `json:"quote,omitempty"`
	Rating          int    `json:"rating"`
	Image           string `json:"image,omitempty"`
}
