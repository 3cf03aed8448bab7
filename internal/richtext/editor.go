package richtext

import (
	"fmt"
)

// ==================== 命令定义 ====================

// Command 工具栏命令
// 第一类直接作用于模型 (加粗/标题/列表/撤销)，第二类需要调用方先要到 URL (链接/插图)
type Command string

const (
	CmdBold          Command = "bold"
	CmdItalic        Command = "italic"
	CmdUnderline     Command = "underline"
	CmdFormatBlock   Command = "formatBlock"          // value: p / h1 / h2 / h3
	CmdUnorderedList Command = "insertUnorderedList"
	CmdOrderedList   Command = "insertOrderedList"
	CmdCreateLink    Command = "createLink"  // value: URL
	CmdInsertImage   Command = "insertImage" // value: 图片 URL
	CmdUndo          Command = "undo"
	CmdRedo          Command = "redo"
)

// ToolbarItem 工具栏的一个格子
// Separator 是纯视觉分隔，不可点击，不对应任何命令
type ToolbarItem struct {
	Command   Command `json:"command,omitempty"`
	Value     string  `json:"value,omitempty"`
	Label     string  `json:"label,omitempty"`
	Separator bool    `json:"separator,omitempty"`
	NeedsURL  bool    `json:"needs_url,omitempty"`
}

// Toolbar 默认工具栏布局
func Toolbar() []ToolbarItem {
	return []ToolbarItem{
		{Command: CmdBold, Label: "Bold"},
		{Command: CmdItalic, Label: "Italic"},
		{Command: CmdUnderline, Label: "Underline"},
		{Separator: true},
		{Command: CmdFormatBlock, Value: "h1", Label: "Heading 1"},
		{Command: CmdFormatBlock, Value: "h2", Label: "Heading 2"},
		{Command: CmdFormatBlock, Value: "h3", Label: "Heading 3"},
		{Separator: true},
		{Command: CmdUnorderedList, Label: "Bullet List"},
		{Command: CmdOrderedList, Label: "Numbered List"},
		{Separator: true},
		{Command: CmdCreateLink, Label: "Insert Link", NeedsURL: true},
		{Command: CmdInsertImage, Label: "Insert Image", NeedsURL: true},
		{Separator: true},
		{Command: CmdUndo, Label: "Undo"},
		{Command: CmdRedo, Label: "Redo"},
	}
}

// ==================== 选区 ====================

// Selection 当前选区
// Block 为块下标；列表块用 Item 指到第几项，非列表块 Item 为 -1；
// Start/End 是行内纯文本的 rune 偏移，Start==End 表示光标
type Selection struct {
	Block int
	Item  int
	Start int
	End   int
}

// ==================== 编辑器 ====================

// Editor 富文本编辑器
// 模型是渲染的唯一事实来源，外部字符串是持久化的唯一事实来源，
// 两条同步规则见 SetHTML 和 emit
type Editor struct {
	doc Document
	sel Selection

	onChange func(html string)

	// 本地编辑后的"一拍"守卫: 置位期间入站同步直接跳过，防止回环
	updating bool

	undoStack []Document
	redoStack []Document
}

// NewEditor 创建编辑器; onChange 在每次本地编辑后立刻收到最新 HTML (不做防抖)
func NewEditor(onChange func(html string)) *Editor {
	return &Editor{
		doc:      Document{},
		sel:      Selection{Item: -1},
		onChange: onChange,
	}
}

// HTML 当前内容的序列化结果
func (e *Editor) HTML() string {
	return RenderHTML(&e.doc)
}

// SetHTML 入站同步: 外部值变化时覆盖模型
// 变化源自本地编辑时 (守卫置位) 不覆盖，只消费掉守卫；内容相同也不动
func (e *Editor) SetHTML(v string) error {
	if e.updating {
		e.updating = false
		return nil
	}
	if v == e.HTML() {
		return nil
	}

	doc, err := ParseHTML(v)
	if err != nil {
		return err
	}
	e.doc = doc
	e.sel = Selection{Item: -1}
	e.undoStack = nil
	e.redoStack = nil
	return nil
}

// Settle 手动清掉一拍守卫 (对应浏览器里的 setTimeout(0))
func (e *Editor) Settle() {
	e.updating = false
}

// Select 设置选区
func (e *Editor) Select(block, item, start, end int) {
	e.sel = Selection{Block: block, Item: item, Start: start, End: end}
}

// emit 出站同步: 每次本地编辑立即序列化并上抛
func (e *Editor) emit() {
	e.updating = true
	if e.onChange != nil {
		e.onChange(e.HTML())
	}
}

// snapshot 记录撤销点，新编辑清空重做栈
func (e *Editor) snapshot() {
	e.undoStack = append(e.undoStack, e.doc.Clone())
	e.redoStack = nil
}

// ==================== 命令分发 ====================

// Exec 执行一条工具栏命令
func (e *Editor) Exec(cmd Command, value string) error {
	switch cmd {
	case CmdBold:
		e.toggleMark(func(n *Inline) *bool { return &n.Bold })
	case CmdItalic:
		e.toggleMark(func(n *Inline) *bool { return &n.Italic })
	case CmdUnderline:
		e.toggleMark(func(n *Inline) *bool { return &n.Underline })
	case CmdFormatBlock:
		e.formatBlock(value)
	case CmdUnorderedList:
		e.toggleList(BulletList)
	case CmdOrderedList:
		e.toggleList(NumberedList)
	case CmdCreateLink:
		if value == "" {
			return fmt.Errorf("createLink requires a url")
		}
		e.createLink(value)
	case CmdInsertImage:
		if value == "" {
			return fmt.Errorf("insertImage requires a url")
		}
		e.insertImage(value)
	case CmdUndo:
		e.undo()
	case CmdRedo:
		e.redo()
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

// ==================== 文本编辑 ====================

// InsertText 在光标处插入文本 (有选区时先替换选区)
func (e *Editor) InsertText(s string) {
	if e.doc.Empty() {
		e.doc.Blocks = append(e.doc.Blocks, Block{Type: Paragraph})
		e.sel = Selection{Item: -1}
	}
	if !e.selValid() {
		return
	}

	e.snapshot()
	content := e.selContent()
	content = spliceText(content, e.sel.Start, e.sel.End, s)
	e.setSelContent(content)
	cursor := e.sel.Start + len([]rune(s))
	e.sel.Start, e.sel.End = cursor, cursor
	e.emit()
}

// ==================== 行内标记 ====================

// toggleMark 对选区内文本加/去标记
// 选区内全部已带该标记则移除，否则补齐 (和浏览器原生行为一致)
func (e *Editor) toggleMark(mark func(*Inline) *bool) {
	if !e.selValid() || e.sel.Start == e.sel.End {
		return
	}

	e.snapshot()
	content := e.selContent()

	allSet := true
	walkRange(content, e.sel.Start, e.sel.End, func(n *Inline) {
		if n.Type != ImageNode && !*mark(n) {
			allSet = false
		}
	})

	content = splitRange(content, e.sel.Start, e.sel.End)
	walkRange(content, e.sel.Start, e.sel.End, func(n *Inline) {
		if n.Type != ImageNode {
			*mark(n) = !allSet
		}
	})

	e.setSelContent(mergeRuns(content))
	e.emit()
}

// createLink 把选区文本包成链接
func (e *Editor) createLink(href string) {
	if !e.selValid() || e.sel.Start == e.sel.End {
		return
	}

	e.snapshot()
	content := splitRange(e.selContent(), e.sel.Start, e.sel.End)
	walkRange(content, e.sel.Start, e.sel.End, func(n *Inline) {
		if n.Type == TextNode {
			n.Type = LinkNode
			n.Href = href
		}
	})
	e.setSelContent(mergeRuns(content))
	e.emit()
}

// insertImage 在光标处插入图片节点
func (e *Editor) insertImage(src string) {
	if e.doc.Empty() {
		e.doc.Blocks = append(e.doc.Blocks, Block{Type: Paragraph})
		e.sel = Selection{Item: -1}
	}
	if !e.selValid() {
		return
	}

	e.snapshot()
	content := splitRange(e.selContent(), e.sel.Start, e.sel.Start)
	img := Inline{Type: ImageNode, Src: src}
	content = insertAt(content, e.sel.Start, img)
	e.setSelContent(content)
	e.sel.Start++
	e.sel.End = e.sel.Start
	e.emit()
}

// ==================== 块级命令 ====================

// formatBlock 改当前块的类型 (p / h1 / h2 / h3)
// 作用在列表块上时把每一项拆成独立的目标块
func (e *Editor) formatBlock(tag string) {
	if !e.blockValid() {
		return
	}
	target := BlockTypeFromTag(tag)
	if target == BulletList || target == NumberedList {
		return
	}

	e.snapshot()
	blk := &e.doc.Blocks[e.sel.Block]

	if blk.IsList() {
		replaced := make([]Block, 0, len(blk.Items))
		for _, item := range blk.Items {
			replaced = append(replaced, Block{Type: target, Content: item})
		}
		e.doc.Blocks = append(e.doc.Blocks[:e.sel.Block],
			append(replaced, e.doc.Blocks[e.sel.Block+1:]...)...)
		e.sel.Item = -1
	} else {
		blk.Type = target
	}
	e.emit()
}

// toggleList 列表切换
// 普通块 -> 单项列表；同类列表 -> 拆回段落；异类列表 -> 换类型
func (e *Editor) toggleList(target BlockType) {
	if !e.blockValid() {
		return
	}

	e.snapshot()
	blk := &e.doc.Blocks[e.sel.Block]

	switch {
	case blk.Type == target:
		paras := make([]Block, 0, len(blk.Items))
		for _, item := range blk.Items {
			paras = append(paras, Block{Type: Paragraph, Content: item})
		}
		e.doc.Blocks = append(e.doc.Blocks[:e.sel.Block],
			append(paras, e.doc.Blocks[e.sel.Block+1:]...)...)
		e.sel.Item = -1

	case blk.IsList():
		blk.Type = target

	default:
		*blk = Block{Type: target, Items: [][]Inline{blk.Content}}
		e.sel.Item = 0
	}
	e.emit()
}

// ==================== 撤销/重做 ====================

func (e *Editor) undo() {
	if len(e.undoStack) == 0 {
		return
	}
	e.redoStack = append(e.redoStack, e.doc.Clone())
	e.doc = e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.sel = Selection{Item: -1}
	e.emit()
}

func (e *Editor) redo() {
	if len(e.redoStack) == 0 {
		return
	}
	e.undoStack = append(e.undoStack, e.doc.Clone())
	e.doc = e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.sel = Selection{Item: -1}
	e.emit()
}

// ==================== 选区辅助 ====================

func (e *Editor) blockValid() bool {
	return e.sel.Block >= 0 && e.sel.Block < len(e.doc.Blocks)
}

func (e *Editor) selValid() bool {
	if !e.blockValid() {
		return false
	}
	blk := &e.doc.Blocks[e.sel.Block]
	if blk.IsList() {
		return e.sel.Item >= 0 && e.sel.Item < len(blk.Items)
	}
	return true
}

// selContent 选区所在的行内内容
func (e *Editor) selContent() []Inline {
	blk := &e.doc.Blocks[e.sel.Block]
	if blk.IsList() {
		return blk.Items[e.sel.Item]
	}
	return blk.Content
}

func (e *Editor) setSelContent(content []Inline) {
	blk := &e.doc.Blocks[e.sel.Block]
	if blk.IsList() {
		blk.Items[e.sel.Item] = content
	} else {
		blk.Content = content
	}
}
