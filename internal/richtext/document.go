package richtext

// 富文本文档模型
// 不再依赖浏览器那套已废弃的 document.execCommand，改成显式的块/行内节点树，
// 工具栏命令操作模型，序列化器负责和 HTML 互转

// ==================== 块级节点 ====================

// BlockType 块类型
type BlockType int

const (
	Paragraph BlockType = iota
	Heading1
	Heading2
	Heading3
	BulletList
	NumberedList
)

// Tag 块对应的 HTML 标签
func (t BlockType) Tag() string {
	switch t {
	case Heading1:
		return "h1"
	case Heading2:
		return "h2"
	case Heading3:
		return "h3"
	case BulletList:
		return "ul"
	case NumberedList:
		return "ol"
	default:
		return "p"
	}
}

// BlockTypeFromTag 按标签反查块类型，未知标签按段落处理
func BlockTypeFromTag(tag string) BlockType {
	switch tag {
	case "h1":
		return Heading1
	case "h2":
		return Heading2
	case "h3":
		return Heading3
	case "ul":
		return BulletList
	case "ol":
		return NumberedList
	default:
		return Paragraph
	}
}

// Block 一个块级节点
// 段落/标题用 Content；列表用 Items，每项一行行内内容
type Block struct {
	Type    BlockType
	Content []Inline
	Items   [][]Inline
}

// IsList 是否列表块
func (b *Block) IsList() bool {
	return b.Type == BulletList || b.Type == NumberedList
}

// ==================== 行内节点 ====================

// InlineType 行内节点类型
type InlineType int

const (
	TextNode InlineType = iota
	LinkNode
	ImageNode
)

// Inline 行内节点
// Text: 文本 + 粗体/斜体/下划线标记; Link: 带 Href 的文本; Image: 只有 Src/Alt
type Inline struct {
	Type InlineType
	Text string
	Href string
	Src  string
	Alt  string

	Bold      bool
	Italic    bool
	Underline bool
}

// plainLen 节点占用的纯文本长度 (图片按 1 个位置算)
func (n *Inline) plainLen() int {
	if n.Type == ImageNode {
		return 1
	}
	return len([]rune(n.Text))
}

// ==================== 文档 ====================

// Document 整篇内容
type Document struct {
	Blocks []Block
}

// Empty 是否空文档
func (d *Document) Empty() bool {
	return len(d.Blocks) == 0
}

// Clone 深拷贝，撤销栈存快照用
func (d *Document) Clone() Document {
	out := Document{Blocks: make([]Block, len(d.Blocks))}
	for i, b := range d.Blocks {
		nb := Block{Type: b.Type}
		if b.Content != nil {
			nb.Content = append([]Inline(nil), b.Content...)
		}
		if b.Items != nil {
			nb.Items = make([][]Inline, len(b.Items))
			for j, item := range b.Items {
				nb.Items[j] = append([]Inline(nil), item...)
			}
		}
		out.Blocks[i] = nb
	}
	return out
}
