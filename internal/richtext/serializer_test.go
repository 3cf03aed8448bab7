package richtext

import "testing"

// ==================== 序列化往返 ====================

func TestRoundTripSupportedSubset(t *testing.T) {
	// 支持的子集上 Parse 和 Render 必须逐字节互逆
	cases := []string{
		"<p>hello</p>",
		"<h1>Title</h1><p>body</p>",
		"<h2>Sub</h2><h3>Minor</h3>",
		"<p><b>bold</b> plain <i>italic</i> <u>under</u></p>",
		"<p><b><i>both</i></b></p>",
		"<ul><li>one</li><li>two</li></ul>",
		"<ol><li>first</li><li>second</li></ol>",
		`<p><a href="https://example.com">link</a></p>`,
		`<p><img src="https://example.com/a.jpg" alt="photo"></p>`,
		"<p>first</p><p>second</p>",
	}

	for _, html := range cases {
		doc, err := ParseHTML(html)
		if err != nil {
			t.Fatalf("ParseHTML(%q) 失败: %v", html, err)
		}
		if got := RenderHTML(&doc); got != html {
			t.Errorf("往返不一致:\n in:  %q\n out: %q", html, got)
		}
	}
}

func TestParseToleratesAliasesAndContainers(t *testing.T) {
	// strong/em 归一化为 b/i
	doc, err := ParseHTML("<p><strong>x</strong><em>y</em></p>")
	if err != nil {
		t.Fatal(err)
	}
	if got := RenderHTML(&doc); got != "<p><b>x</b><i>y</i></p>" {
		t.Errorf("别名归一化错误: %q", got)
	}

	// 容器标签下钻
	doc, err = ParseHTML("<div><p>inner</p></div>")
	if err != nil {
		t.Fatal(err)
	}
	if got := RenderHTML(&doc); got != "<p>inner</p>" {
		t.Errorf("容器下钻错误: %q", got)
	}

	// 裸文本包成段落
	doc, err = ParseHTML("loose text")
	if err != nil {
		t.Fatal(err)
	}
	if got := RenderHTML(&doc); got != "<p>loose text</p>" {
		t.Errorf("裸文本处理错误: %q", got)
	}
}

func TestRenderEscapesText(t *testing.T) {
	doc := Document{Blocks: []Block{{
		Type:    Paragraph,
		Content: []Inline{{Type: TextNode, Text: `a < b & "c"`}},
	}}}

	got := RenderHTML(&doc)
	if got != "<p>a &lt; b &amp; &#34;c&#34;</p>" {
		t.Errorf("文本未转义: %q", got)
	}
}

func TestEmptyDocument(t *testing.T) {
	doc, err := ParseHTML("")
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Empty() {
		t.Error("空字符串应解析为空文档")
	}
	if got := RenderHTML(&doc); got != "" {
		t.Errorf("空文档应渲染为空串, got %q", got)
	}
}
