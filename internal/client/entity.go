package client

import (
	"context"
	"fmt"
)

// ==================== 实体类别 ====================

// EntityKind 上游管理接口的实体类别，对应各自的子资源路径
// 删除操作统一走 Delete(kind, id)，不再按页面各写一份
type EntityKind string

const (
	KindProperty    EntityKind = "properties"
	KindCompound    EntityKind = "compounds"
	KindDeveloper   EntityKind = "developers"
	KindBlogPost    EntityKind = "blog-posts"
	KindLocation    EntityKind = "locations"
	KindAmenity     EntityKind = "amenities"
	KindAuthor      EntityKind = "authors"
	KindPartner     EntityKind = "partners"
	KindTestimonial EntityKind = "testimonials"
	KindContact     EntityKind = "contact-submissions"
)

var knownKinds = map[EntityKind]bool{
	KindProperty: true, KindCompound: true, KindDeveloper: true,
	KindBlogPost: true, KindLocation: true, KindAmenity: true,
	KindAuthor: true, KindPartner: true, KindTestimonial: true,
	KindContact: true,
}

// ParseKind 校验并解析实体类别
func ParseKind(s string) (EntityKind, error) {
	k := EntityKind(s)
	if !knownKinds[k] {
		return "", fmt.Errorf("unknown entity kind: %s", s)
	}
	return k, nil
}

// ListPath 列表路径，上游是 Django 风格，带尾斜杠
func (k EntityKind) ListPath() string {
	return string(k) + "/"
}

// DetailPath 详情路径
func (k EntityKind) DetailPath(id int64) string {
	return fmt.Sprintf("%s/%d/", k, id)
}

// ==================== 统一删除 ====================

// Delete 按实体类别 + ID 删除，上游删除成功无响应体
func Delete(ctx context.Context, c *Client, kind EntityKind, id int64) error {
	resp, err := c.R(ctx).Delete(kind.DetailPath(id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return c.fail(resp)
	}
	return nil
}
