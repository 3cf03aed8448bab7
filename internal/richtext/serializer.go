package richtext

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML 序列化/反序列化
// 支持的子集: p h1-h3 ul ol li b i u a img
// 同一份文档 Render -> Parse -> Render 结果逐字节一致

// ==================== 序列化 ====================

// RenderHTML 把文档序列化成 HTML 字符串
func RenderHTML(d *Document) string {
	var b strings.Builder
	for _, blk := range d.Blocks {
		renderBlock(&b, &blk)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, blk *Block) {
	tag := blk.Type.Tag()
	b.WriteString("<" + tag + ">")

	if blk.IsList() {
		for _, item := range blk.Items {
			b.WriteString("<li>")
			renderInlines(b, item)
			b.WriteString("</li>")
		}
	} else {
		renderInlines(b, blk.Content)
	}

	b.WriteString("</" + tag + ">")
}

func renderInlines(b *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		renderInline(b, &n)
	}
}

// 标记固定按 b > i > u 的顺序嵌套，保证序列化结果稳定
func renderInline(b *strings.Builder, n *Inline) {
	switch n.Type {
	case ImageNode:
		b.WriteString(`<img src="` + html.EscapeString(n.Src) + `"`)
		if n.Alt != "" {
			b.WriteString(` alt="` + html.EscapeString(n.Alt) + `"`)
		}
		b.WriteString(">")
		return

	case LinkNode:
		b.WriteString(`<a href="` + html.EscapeString(n.Href) + `">`)
		renderMarked(b, n)
		b.WriteString("</a>")
		return

	default:
		renderMarked(b, n)
	}
}

func renderMarked(b *strings.Builder, n *Inline) {
	var open, close string
	if n.Bold {
		open += "<b>"
		close = "</b>" + close
	}
	if n.Italic {
		open += "<i>"
		close = "</i>" + close
	}
	if n.Underline {
		open += "<u>"
		close = "</u>" + close
	}
	b.WriteString(open)
	b.WriteString(html.EscapeString(n.Text))
	b.WriteString(close)
}

// ==================== 反序列化 ====================

// ParseHTML 把 HTML 解析回文档模型
// 宽容解析: 未知标签透传内容，strong/em 视同 b/i，顶层裸文本包成段落
func ParseHTML(s string) (Document, error) {
	nodes, err := xhtml.ParseFragment(strings.NewReader(s), &xhtml.Node{
		Type:     xhtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return Document{}, err
	}

	var doc Document
	for _, n := range nodes {
		parseTopLevel(&doc, n)
	}
	return doc, nil
}

func parseTopLevel(doc *Document, n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		doc.Blocks = append(doc.Blocks, Block{
			Type:    Paragraph,
			Content: []Inline{{Type: TextNode, Text: n.Data}},
		})

	case xhtml.ElementNode:
		switch n.Data {
		case "p", "h1", "h2", "h3":
			blk := Block{Type: BlockTypeFromTag(n.Data)}
			blk.Content = parseInlines(n, marks{})
			doc.Blocks = append(doc.Blocks, blk)

		case "ul", "ol":
			blk := Block{Type: BlockTypeFromTag(n.Data)}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == xhtml.ElementNode && c.Data == "li" {
					blk.Items = append(blk.Items, parseInlines(c, marks{}))
				}
			}
			doc.Blocks = append(doc.Blocks, blk)

		case "div", "section", "article", "body":
			// 容器标签: 下钻
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				parseTopLevel(doc, c)
			}

		default:
			// 其他顶层元素 (span 等) 按段落兜底
			content := parseInlines(n, marksFromTag(n.Data, marks{}))
			if len(content) > 0 {
				doc.Blocks = append(doc.Blocks, Block{Type: Paragraph, Content: content})
			}
		}
	}
}

// marks 解析过程中继承下来的文本标记
type marks struct {
	bold, italic, underline bool
	href                    string
}

func marksFromTag(tag string, m marks) marks {
	switch tag {
	case "b", "strong":
		m.bold = true
	case "i", "em":
		m.italic = true
	case "u":
		m.underline = true
	}
	return m
}

func parseInlines(n *xhtml.Node, m marks) []Inline {
	var out []Inline
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, parseInline(c, m)...)
	}
	return out
}

func parseInline(n *xhtml.Node, m marks) []Inline {
	switch n.Type {
	case xhtml.TextNode:
		if n.Data == "" {
			return nil
		}
		node := Inline{
			Type: TextNode, Text: n.Data,
			Bold: m.bold, Italic: m.italic, Underline: m.underline,
		}
		if m.href != "" {
			node.Type = LinkNode
			node.Href = m.href
		}
		return []Inline{node}

	case xhtml.ElementNode:
		switch n.Data {
		case "b", "strong", "i", "em", "u":
			return parseInlines(n, marksFromTag(n.Data, m))
		case "a":
			m.href = attr(n, "href")
			return parseInlines(n, m)
		case "img":
			return []Inline{{Type: ImageNode, Src: attr(n, "src"), Alt: attr(n, "alt")}}
		case "br":
			return []Inline{{Type: TextNode, Text: "\n", Bold: m.bold, Italic: m.italic, Underline: m.underline}}
		default:
			return parseInlines(n, m)
		}
	}
	return nil
}

func attr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
