package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewAPIClient 创建统一配置的 Resty 客户端
// 它是全系统访问上游 REST API 的唯一网络入口
func NewAPIClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).                     // 上游列表接口偶尔较慢，给 15s
		SetHeader("User-Agent", "Estate-Portal-Go/1.0") // 统一 UA
}
