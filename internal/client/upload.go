package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"estate_portal_v1/pkg/utils"
)

// ==================== 上传契约 ====================

// FileUpload 一次 multipart 上传里的一个文件
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadResult 上传结果，上游新旧两种信封都归一化到这个结构
type UploadResult struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	AltText string `json:"alt_text,omitempty"`
}

// uploadEnvelope 上游可能的响应形态:
// 新格式 {"images": [...]}，旧格式为单个对象
type uploadEnvelope struct {
	Images []rawUploadResult `json:"images"`
	rawUploadResult
}

// rawUploadResult id 字段可能是数字也可能是字符串
type rawUploadResult struct {
	ID      json.Number `json:"id"`
	Image   string      `json:"image"`
	AltText string      `json:"alt_text"`
}

func (r rawUploadResult) normalize() UploadResult {
	return UploadResult{
		ID:      r.ID.String(),
		Image:   utils.NormalizeMediaPath(r.Image),
		AltText: r.AltText,
	}
}

// ==================== 上传操作 ====================

// UploadImages 以 multipart/form-data 上传一张或多张图片
// kind: 目标实体类别的判别字段 (property / compound / blog ...)
func UploadImages(ctx context.Context, c *Client, kind string, files []FileUpload) ([]UploadResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to upload")
	}

	req := c.R(ctx).SetFormData(map[string]string{"type": kind})
	for _, f := range files {
		req.SetFileReader("image", f.Name, bytes.NewReader(f.Data))
	}

	resp, err := req.Post("upload/image/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.fail(resp)
	}

	return normalizeUploadResponse(resp.Body())
}

// normalizeUploadResponse 把两种响应格式归一化成结果切片
func normalizeUploadResponse(body []byte) ([]UploadResult, error) {
	var env uploadEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		// 兜底: 上游有个历史版本直接返回数组
		var list []rawUploadResult
		if err2 := json.Unmarshal(body, &list); err2 != nil {
			return nil, fmt.Errorf("unexpected upload response: %v", err)
		}
		out := make([]UploadResult, 0, len(list))
		for _, r := range list {
			out = append(out, r.normalize())
		}
		return out, nil
	}

	// 新格式
	if len(env.Images) > 0 {
		out := make([]UploadResult, 0, len(env.Images))
		for _, r := range env.Images {
			out = append(out, r.normalize())
		}
		return out, nil
	}

	// 旧格式: 单对象
	if env.Image != "" || env.ID.String() != "" {
		return []UploadResult{env.rawUploadResult.normalize()}, nil
	}

	return []UploadResult{}, nil
}
