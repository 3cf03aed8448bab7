package model

// Compound 楼盘项目 (小区)
// 搜索页的客户端过滤就是跑在这个结构上的
type Compound struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Developer *Developer `json:"developer"`
	Location  *Location  `json:"location"`
	MainImage string     `json:"main_image"`

	Description string `json:"description"`
	Status      string `json:"status"`

	// 交付日期，上游为 "2026-06-30" 这类日期串，可能为空
	DeliveryDate string `json:"delivery_date"`

	Amenities []Amenity `json:"amenities"`

	// 起步价，上游可能返回数字或字符串
	MinPrice FlexFloat `json:"min_price,omitempty"`

	// 最长分期年限
	MaxInstallmentYears int `json:"max_installment_years,omitempty"`

	Images   []string `json:"images,omitempty"`
	VideoURL string   `json:"video_url,omitempty"`
	MinArea  float64  `json:"min_area,omitempty"`
}
