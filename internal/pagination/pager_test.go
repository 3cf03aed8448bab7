package pagination

import (
	"net/url"
	"testing"
)

// ==================== 页码令牌 ====================

func TestTokensSinglePageRendersNothing(t *testing.T) {
	if got := Tokens(1, 1); got != nil {
		t.Errorf("总页数 1 不应渲染控件, got %v", got)
	}
	if got := Tokens(1, 0); got != nil {
		t.Errorf("总页数 0 不应渲染控件, got %v", got)
	}
}

func TestTokensAlwaysStartAndEndWithBoundaryPages(t *testing.T) {
	for _, tc := range []struct{ current, total int }{
		{1, 2}, {1, 10}, {5, 10}, {10, 10}, {50, 100},
	} {
		got := Tokens(tc.current, tc.total)
		if len(got) == 0 {
			t.Fatalf("(%d,%d) 不应为空", tc.current, tc.total)
		}
		if got[0] != 1 {
			t.Errorf("(%d,%d) 应以第 1 页开头, got %v", tc.current, tc.total, got)
		}
		if got[len(got)-1] != Token(tc.total) {
			t.Errorf("(%d,%d) 应以最后一页结尾, got %v", tc.current, tc.total, got)
		}
	}
}

func TestTokensNeighborhoodAndEllipsis(t *testing.T) {
	// 当前页 5 / 共 10 页: 1 ... 3 4 5 6 7 ... 10
	got := Tokens(5, 10)
	want := []Token{1, Ellipsis, 3, 4, 5, 6, 7, Ellipsis, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestTokensNoEllipsisWhenAdjacent(t *testing.T) {
	// 当前页 2 / 共 5 页: 跳距不超过一页时不插省略号
	got := Tokens(2, 5)
	for _, tok := range got {
		if tok.IsEllipsis() {
			t.Fatalf("相邻页不应出现省略号: %v", got)
		}
	}
}

func TestTokensAtMostOneEllipsisPerSide(t *testing.T) {
	got := Tokens(50, 100)
	n := 0
	for _, tok := range got {
		if tok.IsEllipsis() {
			n++
		}
	}
	if n > 2 {
		t.Errorf("每侧最多一个省略号, got %v", got)
	}
}

func TestTokenJSON(t *testing.T) {
	b, _ := Ellipsis.MarshalJSON()
	if string(b) != `"..."` {
		t.Errorf("省略号应序列化为 \"...\", got %s", b)
	}
	b, _ = Token(7).MarshalJSON()
	if string(b) != "7" {
		t.Errorf("页码应序列化为数字, got %s", b)
	}
}

// ==================== 查询串操作 ====================

func TestGoToPageFirstPageIsCanonical(t *testing.T) {
	q := url.Values{"page": {"3"}, "location": {"New Cairo"}}

	GoToPage(q, 1)
	if q.Has("page") {
		t.Error("跳到第 1 页应删除 page 参数")
	}
	if q.Get("location") != "New Cairo" {
		t.Error("其他参数不应被动")
	}

	GoToPage(q, 4)
	if q.Get("page") != "4" {
		t.Errorf("跳页应写入参数, got %q", q.Get("page"))
	}
}

func TestSetPageSizeResetsPage(t *testing.T) {
	q := url.Values{"page": {"9"}}

	SetPageSize(q, 25)
	if q.Has("page") {
		t.Error("改 page_size 必须无条件回到第 1 页")
	}
	if q.Get("page_size") != "25" {
		t.Errorf("page_size 未写入, got %q", q.Get("page_size"))
	}
}

// ==================== 分页状态 ====================

func TestFromQueryDefaults(t *testing.T) {
	p := FromQuery(url.Values{})
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Errorf("缺省值错误: %+v", p)
	}

	p = FromQuery(url.Values{"page": {"0"}, "page_size": {"-3"}})
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Errorf("非法值应回落到缺省: %+v", p)
	}
}

func TestClampAndWindow(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	// 越界页钳回最后一页
	p := Pagination{Page: 99, PageSize: 10}.Clamp(len(items))
	if p.Page != 3 {
		t.Fatalf("越界页应钳到 3, got %d", p.Page)
	}

	window := Window(items, p)
	if len(window) != 3 || window[0] != 20 {
		t.Errorf("最后一页窗口错误: %v", window)
	}

	// 空集合
	p = Pagination{Page: 5, PageSize: 10}.Clamp(0)
	if p.Page != 1 {
		t.Errorf("空集合应钳到第 1 页, got %d", p.Page)
	}
	if w := Window([]int{}, p); len(w) != 0 {
		t.Errorf("空集合窗口应为空, got %v", w)
	}
}

func TestTotalPages(t *testing.T) {
	p := Pagination{PageSize: 10}
	for _, tc := range []struct{ count, want int }{
		{0, 0}, {1, 1}, {10, 1}, {11, 2}, {23, 3},
	} {
		if got := p.TotalPages(tc.count); got != tc.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}
