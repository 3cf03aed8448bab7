package filter

import (
	"strconv"
	"strings"
	"time"

	"estate_portal_v1/internal/model"
)

// ==================== 过滤状态 ====================

// 下拉框的"全部"哨兵值，等同于不过滤
const (
	AllLocations  = "all-locations"
	AllDevelopers = "all-developers"
	AnyYear       = "any"
)

// State 搜索页的过滤状态
// 所有字段都是查询参数原样的字符串，空串表示未设置
type State struct {
	Search       string // 关键词，匹配项目名/区域名/开发商名
	Location     string // 区域名精确匹配
	Developer    string // 开发商名精确匹配
	MinPrice     string // 起步价下限
	MaxPrice     string // 起步价上限
	DeliveryYear string // 交付年份 (精确等于)
	Installments string // 最少分期年限
}

// IsZero 是否没有任何生效的过滤条件
func (s State) IsZero() bool {
	return !s.searchActive() && !s.locationActive() && !s.developerActive() &&
		s.MinPrice == "" && s.MaxPrice == "" &&
		!s.deliveryYearActive() && s.Installments == ""
}

func (s State) searchActive() bool    { return s.Search != "" }
func (s State) locationActive() bool  { return s.Location != "" && s.Location != AllLocations }
func (s State) developerActive() bool { return s.Developer != "" && s.Developer != AllDevelopers }
func (s State) deliveryYearActive() bool {
	return s.DeliveryYear != "" && s.DeliveryYear != AnyYear
}

// ==================== 过滤执行 ====================

// Apply 对内存中的楼盘集合执行过滤，所有生效条件取 AND
// 不修改源切片；零条件时原样返回源切片
func Apply(src []model.Compound, s State) []model.Compound {
	if s.IsZero() {
		return src
	}

	out := make([]model.Compound, 0, len(src))
	for i := range src {
		if matches(&src[i], s) {
			out = append(out, src[i])
		}
	}
	return out
}

func matches(c *model.Compound, s State) bool {
	// 1. 关键词: 不区分大小写的子串匹配，嵌套字段缺失时视为不匹配
	if s.searchActive() {
		term := strings.ToLower(s.Search)
		ok := strings.Contains(strings.ToLower(c.Name), term) ||
			(c.Location != nil && strings.Contains(strings.ToLower(c.Location.Name), term)) ||
			(c.Developer != nil && strings.Contains(strings.ToLower(c.Developer.Name), term))
		if !ok {
			return false
		}
	}

	// 2. 区域
	if s.locationActive() {
		if c.Location == nil || c.Location.Name != s.Location {
			return false
		}
	}

	// 3. 开发商
	if s.developerActive() {
		if c.Developer == nil || c.Developer.Name != s.Developer {
			return false
		}
	}

	// 4. 价格区间: 缺失的边界不约束，缺失的价格字段按 0 参与比较
	if s.MinPrice != "" {
		if min, err := strconv.ParseFloat(s.MinPrice, 64); err == nil {
			if c.MinPrice.Float64() < min {
				return false
			}
		}
	}
	if s.MaxPrice != "" {
		if max, err := strconv.ParseFloat(s.MaxPrice, 64); err == nil {
			if c.MinPrice.Float64() > max {
				return false
			}
		}
	}

	// 5. 交付年份: 精确等于；没有交付日期的楼盘在该条件生效时直接排除
	if s.deliveryYearActive() {
		year, ok := deliveryYear(c.DeliveryDate)
		if !ok {
			return false
		}
		want, err := strconv.Atoi(s.DeliveryYear)
		if err != nil || year != want {
			return false
		}
	}

	// 6. 分期年限: 楼盘支持的年限 >= 请求值，缺失按 0
	if s.Installments != "" {
		if want, err := strconv.Atoi(s.Installments); err == nil {
			if c.MaxInstallmentYears < want {
				return false
			}
		}
	}

	return true
}

// deliveryYear 解析交付日期的年份
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func deliveryYear(date string) (int, bool) {
	if date == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}
