package model

// 博客内容相关

// 博文状态
const (
	PostStatusPublished = "Published"
	PostStatusDraft     = "Draft"
)

// Author 作者
type Author struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
}

// BlogPost 博客文章，content 字段为富文本 HTML
type BlogPost struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Excerpt     string  `json:"excerpt"`
	Content     string  `json:"content"`
	PublishDate string  `json:"publish_date"`
	Author      *Author `json:"author"`
	Image       string  `json:"image"`
	Status      string  `json:"status"`
	CoverImage  string  `json:"cover_image,omitempty"`
}
