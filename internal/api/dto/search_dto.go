package dto

import (
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/pagination"
)

// SearchResponse 搜索页响应
// 过滤在本进程内存里做，分页令牌一并算好，前端直接渲染
type SearchResponse struct {
	Results    []model.Compound   `json:"results"`
	Count      int                `json:"count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Tokens     []pagination.Token `json:"page_tokens"`
}
