package richtext

// 行内节点的纯文本偏移运算
// 偏移量按 rune 计，图片节点占 1 个位置

// splitAt 在节点内部 offset 处把文本节点一分为二
func splitAt(n Inline, offset int) (Inline, Inline) {
	runes := []rune(n.Text)
	left, right := n, n
	left.Text = string(runes[:offset])
	right.Text = string(runes[offset:])
	return left, right
}

// splitRange 切开节点使 start 和 end 都恰好落在节点边界上
func splitRange(nodes []Inline, start, end int) []Inline {
	nodes = splitBoundary(nodes, start)
	if end != start {
		nodes = splitBoundary(nodes, end)
	}
	return nodes
}

func splitBoundary(nodes []Inline, pos int) []Inline {
	out := make([]Inline, 0, len(nodes)+1)
	offset := 0
	for _, n := range nodes {
		l := n.plainLen()
		if n.Type != ImageNode && pos > offset && pos < offset+l {
			left, right := splitAt(n, pos-offset)
			out = append(out, left, right)
		} else {
			out = append(out, n)
		}
		offset += l
	}
	return out
}

// walkRange 对完全处于 [start, end) 内的节点执行 fn
// 调用前必须先 splitRange，保证没有跨边界的节点
func walkRange(nodes []Inline, start, end int, fn func(*Inline)) {
	offset := 0
	for i := range nodes {
		l := nodes[i].plainLen()
		if offset >= start && offset+l <= end && l > 0 {
			fn(&nodes[i])
		}
		offset += l
	}
}

// insertAt 在纯文本偏移处插入一个节点 (边界需已切开)
func insertAt(nodes []Inline, pos int, ins Inline) []Inline {
	out := make([]Inline, 0, len(nodes)+1)
	offset := 0
	inserted := false
	for _, n := range nodes {
		if !inserted && offset >= pos {
			out = append(out, ins)
			inserted = true
		}
		out = append(out, n)
		offset += n.plainLen()
	}
	if !inserted {
		out = append(out, ins)
	}
	return out
}

// spliceText 把 [start, end) 区间替换成纯文本 s
// 新文本继承光标前一个文本节点的标记
func spliceText(nodes []Inline, start, end int, s string) []Inline {
	nodes = splitRange(nodes, start, end)

	out := make([]Inline, 0, len(nodes)+1)
	var prev *Inline
	offset := 0
	inserted := s == ""
	for _, n := range nodes {
		l := n.plainLen()
		switch {
		case offset+l <= start:
			out = append(out, n)
			if n.Type != ImageNode {
				prev = &out[len(out)-1]
			}
		case offset >= end:
			if !inserted {
				out = append(out, newTextRun(s, prev))
				inserted = true
			}
			out = append(out, n)
		default:
			// 落在删除区间内，丢弃
		}
		offset += l
	}
	if !inserted {
		out = append(out, newTextRun(s, prev))
	}
	return mergeRuns(out)
}

func newTextRun(s string, prev *Inline) Inline {
	n := Inline{Type: TextNode, Text: s}
	if prev != nil && prev.Type == TextNode {
		n.Bold = prev.Bold
		n.Italic = prev.Italic
		n.Underline = prev.Underline
	}
	return n
}

// mergeRuns 合并相邻且属性完全一致的文本节点，并去掉空文本节点
func mergeRuns(nodes []Inline) []Inline {
	out := make([]Inline, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != ImageNode && n.Text == "" {
			continue
		}
		if len(out) > 0 {
			last := &out[len(out)-1]
			if sameRun(last, &n) {
				last.Text += n.Text
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func sameRun(a, b *Inline) bool {
	return a.Type == b.Type && a.Type != ImageNode &&
		a.Href == b.Href &&
		a.Bold == b.Bold && a.Italic == b.Italic && a.Underline == b.Underline
}
