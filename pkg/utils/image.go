package utils

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

// ==================== 图片校验 ====================

// MaxImageSize 单张图片上限 5MB，超出直接本地拒绝，不发网络请求
const MaxImageSize = 5 * 1024 * 1024

// allowedImageTypes 允许的图片 MIME 类型
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateImage 客户端侧校验：类型 + 大小
// 类型以内容嗅探为准，不信任文件扩展名
func ValidateImage(data []byte) error {
	if len(data) > MaxImageSize {
		return fmt.Errorf("file size too large, please upload images smaller than 5MB")
	}

	contentType := DetectImageType(data)
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("invalid file type, please upload JPEG, PNG or WebP images only")
	}

	return nil
}

// DetectImageType 嗅探图片内容类型
func DetectImageType(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	// http.DetectContentType 只看前 512 字节
	return http.DetectContentType(data)
}

// ==================== 媒体路径归一化 ====================

// NormalizeMediaPath 归一化上游返回的媒体路径
// 上游偶尔返回 Windows 风格反斜杠或绝对磁盘路径，统一裁剪到 /media/ 根
func NormalizeMediaPath(path string) string {
	if path == "" {
		return path
	}

	normalized := strings.ReplaceAll(path, "\\", "/")

	if idx := strings.Index(normalized, "/media/"); idx >= 0 {
		normalized = normalized[idx:]
	} else if !strings.HasPrefix(normalized, "/") && !strings.Contains(normalized, "://") {
		normalized = "/" + normalized
	}

	// 去重斜杠 (协议部分除外)
	var b strings.Builder
	for i := 0; i < len(normalized); i++ {
		if normalized[i] == '/' && i > 0 && normalized[i-1] == '/' && !(i >= 2 && normalized[i-2] == ':') {
			continue
		}
		b.WriteByte(normalized[i])
	}

	return b.String()
}

// ==================== 其他工具 ====================

// DownloadImage 拉取网络图片 (按 URL 导入时用)
// 读取上限与本地上传一致，多出的一个字节留给校验阶段识别超限
func DownloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image url: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body failed: %v", err)
	}

	return data, nil
}

// FormatFileSize 人类可读的文件大小
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	const k = 1024
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}

	return fmt.Sprintf("%.2f %s", float64(bytes)/math.Pow(k, float64(i)), sizes[i])
}
