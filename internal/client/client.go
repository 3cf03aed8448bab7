package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"estate_portal_v1/pkg/utils"

	"github.com/go-resty/resty/v2"
)

// ==================== 响应信封 ====================

// Page 上游分页列表的统一信封
// 上游所有列表接口都返回 {results, count, next, previous}
type Page[T any] struct {
	Results  []T     `json:"results"`
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// EmptyPage 空结果，列表拉取失败时降级用
func EmptyPage[T any]() *Page[T] {
	return &Page[T]{Results: []T{}}
}

// ==================== 错误定义 ====================

// APIError 上游返回非 2xx 时的错误载体
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api error: status=%d body=%s", e.StatusCode, e.Body)
}

// IsUnauthorized 是否为上游 401 (Token 失效)
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsNotFound 是否为上游 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// ==================== 客户端 ====================

// Client 上游 REST API 客户端
// public 和 admin 两套 baseURL 各建一个实例，admin 实例绑定会话 Token
type Client struct {
	http *resty.Client

	// 上游返回 401 时的统一回调 (清会话)，public 客户端为 nil
	onUnauthorized func()
}

// NewPublic 创建公开接口客户端 (无鉴权)
func NewPublic(baseURL string) *Client {
	return &Client{http: utils.NewAPIClient(baseURL)}
}

// NewAdmin 创建管理接口客户端
// token: 上游签发的 Token，挂在 Authorization 头上
// onUnauthorized: 401 统一处理回调，由 auth 服务注入"作废会话"逻辑
func NewAdmin(baseURL, token string, onUnauthorized func()) *Client {
	c := utils.NewAPIClient(baseURL)
	if token != "" {
		c.SetHeader("Authorization", "Token "+token)
	}
	return &Client{http: c, onUnauthorized: onUnauthorized}
}

// R 暴露底层 request，上传等特殊请求用
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// fail 把非 2xx 响应转成 APIError，并触发 401 回调
func (c *Client) fail(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
}

// ==================== 通用操作 ====================

// List 拉取分页列表
// query 里的空值由调用方负责剔除，保证上游拿到的是干净参数
func List[T any](ctx context.Context, c *Client, path string, query url.Values) (*Page[T], error) {
	var page Page[T]

	req := c.R(ctx).SetResult(&page)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.fail(resp)
	}

	if page.Results == nil {
		page.Results = []T{}
	}
	return &page, nil
}

// Get 拉取单条详情
func Get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T

	resp, err := c.R(ctx).SetResult(&out).Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.fail(resp)
	}
	return &out, nil
}

// Create 新建 (JSON 提交)
func Create[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T

	resp, err := c.R(ctx).SetBody(body).SetResult(&out).Post(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.fail(resp)
	}
	return &out, nil
}

// Update 整体更新 (PUT)
func Update[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T

	resp, err := c.R(ctx).SetBody(body).SetResult(&out).Put(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.fail(resp)
	}
	return &out, nil
}

// Patch 局部更新 (带文件的表单更新走这里)
func Patch[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T

	resp, err := c.R(ctx).SetBody(body).SetResult(&out).Patch(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, c.fail(resp)
	}
	return &out, nil
}
