package dto

// UploadedImage 返回给前端的一张图
type UploadedImage struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	AltText string `json:"alt_text,omitempty"`
}

// DraftImage 暂存 (尚未上传) 的一张图
type DraftImage struct {
	DraftID    string `json:"draft_id"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
	SizeLabel  string `json:"size_label"`
	PreviewURL string `json:"preview_url"`
	// 已转为持久化状态时填远端 URL，和预览态互斥
	RemoteURL string `json:"remote_url,omitempty"`
}

// ImportImageRequest 按 URL 导入网络图片
type ImportImageRequest struct {
	Type string `json:"type" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

// BulkUploadResponse 批量立即上传的结果，允许部分成功
type BulkUploadResponse struct {
	Uploaded []UploadedImage   `json:"uploaded"`
	Failed   map[string]string `json:"failed,omitempty"` // 文件名 -> 失败原因
}
