package pagination

import (
	"net/url"
	"strconv"
)

// ==================== 分页令牌 ====================

// Token 页码控件里的一个格子: 页码或省略号
type Token int

// Ellipsis 省略号占位，不可点击
const Ellipsis Token = -1

// IsEllipsis 是否省略号
func (t Token) IsEllipsis() bool { return t == Ellipsis }

func (t Token) String() string {
	if t.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(int(t))
}

// MarshalJSON 省略号序列化为 "..."，页码序列化为数字
func (t Token) MarshalJSON() ([]byte, error) {
	if t.IsEllipsis() {
		return []byte(`"..."`), nil
	}
	return []byte(strconv.Itoa(int(t))), nil
}

// delta: 当前页两侧各保留多少个相邻页码
const delta = 2

// Tokens 把 (当前页, 总页数) 压缩成页码序列
// 规则: 永远包含第 1 页和最后一页；当前页 ±delta 范围内的页全部保留；
// 两侧跳过超过一页时插入省略号。总页数 <= 1 时控件不渲染，返回空
func Tokens(current, total int) []Token {
	if total <= 1 {
		return nil
	}

	var middle []int
	lo := current - delta
	if lo < 2 {
		lo = 2
	}
	hi := current + delta
	if hi > total-1 {
		hi = total - 1
	}
	for i := lo; i <= hi; i++ {
		middle = append(middle, i)
	}

	tokens := make([]Token, 0, len(middle)+4)

	// 左侧
	if current-delta > 2 {
		tokens = append(tokens, 1, Ellipsis)
	} else {
		tokens = append(tokens, 1)
	}

	for _, p := range middle {
		tokens = append(tokens, Token(p))
	}

	// 右侧
	if current+delta < total-1 {
		tokens = append(tokens, Ellipsis, Token(total))
	} else {
		tokens = append(tokens, Token(total))
	}

	return tokens
}

// ==================== 查询串操作 ====================

// DefaultPageSize 未指定 page_size 时的默认每页条数
const DefaultPageSize = 10

// GoToPage 跳页: 第 1 页是规范 URL，删掉 page 参数；其余页写入参数
func GoToPage(q url.Values, page int) {
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
}

// SetPageSize 改每页条数并无条件回到第 1 页
// 防止缩小 page_size 后当前页越界
func SetPageSize(q url.Values, size int) {
	q.Set("page_size", strconv.Itoa(size))
	q.Del("page")
}

// ==================== 分页状态 ====================

// Pagination 从请求解析出的分页状态
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// FromQuery 解析查询参数; 缺省 page 为第 1 页，缺省 page_size 取默认值
func FromQuery(q url.Values) Pagination {
	p := Pagination{Page: 1, PageSize: DefaultPageSize}

	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if v := q.Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.PageSize = n
		}
	}
	return p
}

// TotalPages 按总条数计算总页数
func (p Pagination) TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + p.PageSize - 1) / p.PageSize
}

// Clamp 当前页不得超过 max(总页数, 1)
func (p Pagination) Clamp(totalCount int) Pagination {
	total := p.TotalPages(totalCount)
	if total < 1 {
		total = 1
	}
	if p.Page > total {
		p.Page = total
	}
	return p
}

// Window 在内存集合上切出当前页 (客户端过滤后的结果集用)
func Window[T any](items []T, p Pagination) []T {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
