package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/repository"
	"estate_portal_v1/pkg/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

// 最小合法 PNG/JPEG 头，够嗅探出 MIME 即可
func fakePNG(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("\x89PNG\r\n\x1a\n"))
	return data
}

func fakeJPEG(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("\xff\xd8\xff\xe0"))
	return data
}

func setupUploadTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.AdminSession{})
	return db
}

func sessionCtx() context.Context {
	session := &model.AdminSession{SessionID: "test-session", UpstreamToken: "tok"}
	return middleware.WithSession(context.Background(), session)
}

func newTestUploadService(t *testing.T, upstream string) *UploadService {
	repo := repository.NewSessionRepo(setupUploadTestDB(t))
	clients := NewClientFactory(upstream, upstream, repo)
	return NewUploadService(clients, t.TempDir())
}

// ==================== 校验与批次语义 ====================

func TestAddRejectsOversizedFileBeforeNetwork(t *testing.T) {
	// 根本不给上游地址: 超限文件必须在本地就被拒绝，摸到网络就会失败
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("compounds", false, true, 0)

	_, err := c.Add(sessionCtx(), []client.FileUpload{
		{Name: "big.png", Data: fakePNG(utils.MaxImageSize + 1)},
	})
	if err == nil {
		t.Fatal("超过 5MB 的文件应被拒绝")
	}
	if c.Count() != 0 {
		t.Errorf("拒绝后不应留下任何草稿, got %d", c.Count())
	}
}

func TestAddRejectsWholeBatchOnAnyInvalidFile(t *testing.T) {
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("compounds", false, false, 0)

	_, err := c.Add(context.Background(), []client.FileUpload{
		{Name: "good.png", Data: fakePNG(100)},
		{Name: "bad.txt", Data: []byte("not an image at all")},
	})
	if err == nil {
		t.Fatal("混入非图片文件的批次应整批拒绝")
	}
	if c.Count() != 0 {
		t.Errorf("合法文件也不应入集合, got %d", c.Count())
	}
}

func TestAddRejectsBatchExceedingMax(t *testing.T) {
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("compounds", false, false, 3)

	if _, err := c.Add(context.Background(), []client.FileUpload{
		{Name: "a.png", Data: fakePNG(64)},
		{Name: "b.png", Data: fakePNG(64)},
	}); err != nil {
		t.Fatalf("前两张应成功: %v", err)
	}

	// 已有 2 张，再来 2 张会超过上限 3: 整批拒绝，一张都不收
	_, err := c.Add(context.Background(), []client.FileUpload{
		{Name: "c.png", Data: fakePNG(64)},
		{Name: "d.png", Data: fakePNG(64)},
	})
	if err == nil {
		t.Fatal("超过上限的批次应整批拒绝")
	}
	if c.Count() != 2 {
		t.Errorf("已有草稿不应受影响, got %d", c.Count())
	}
}

func TestSingleModeReplaces(t *testing.T) {
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("developers", true, false, 0)

	c.Add(context.Background(), []client.FileUpload{{Name: "first.png", Data: fakePNG(64)}})
	c.Add(context.Background(), []client.FileUpload{{Name: "second.jpg", Data: fakeJPEG(64)}})

	drafts := c.Drafts()
	if len(drafts) != 1 || drafts[0].FileName != "second.jpg" {
		t.Fatalf("单图模式应整体替换, got %+v", drafts)
	}

	// 单图模式一次只许一张
	if _, err := c.Add(context.Background(), []client.FileUpload{
		{Name: "x.png", Data: fakePNG(64)},
		{Name: "y.png", Data: fakePNG(64)},
	}); err == nil {
		t.Error("单图模式一次传多张应被拒绝")
	}
}

// ==================== 本地状态 ====================

func TestRemoveIsLocalOnly(t *testing.T) {
	// 上游地址不可达: Remove 若发远端请求必然报错
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("compounds", false, false, 0)

	added, err := c.Add(context.Background(), []client.FileUpload{
		{Name: "a.png", Data: fakePNG(64)},
	})
	if err != nil {
		t.Fatal(err)
	}

	previewPath := added[0].previewPath
	if previewPath == "" {
		t.Fatal("草稿应有本地预览文件")
	}

	if !c.Remove(added[0].ID) {
		t.Fatal("移除已有草稿应返回 true")
	}
	if c.Count() != 0 {
		t.Errorf("移除后集合应为空, got %d", c.Count())
	}
	if _, err := os.Stat(previewPath); !os.IsNotExist(err) {
		t.Error("移除后预览文件应被删除")
	}

	if c.Remove("nonexistent") {
		t.Error("移除不存在的草稿应返回 false")
	}
}

func TestDraftExactlyOneState(t *testing.T) {
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("compounds", false, false, 0)

	added, _ := c.Add(context.Background(), []client.FileUpload{
		{Name: "a.png", Data: fakePNG(64)},
	})
	d := added[0]

	if !d.Pending() || d.PreviewURL == "" {
		t.Fatal("新草稿应处于未持久化状态且有预览")
	}
	previewPath := d.previewPath

	d.promote(client.UploadResult{ID: "9", Image: "/media/a.png"})

	// 切到远端状态: 原始字节和预览必须同时消失
	if d.Pending() {
		t.Error("promote 后应为已持久化状态")
	}
	if d.data != nil || d.PreviewURL != "" {
		t.Error("已持久化的草稿不应保留字节或预览")
	}
	if _, err := os.Stat(previewPath); !os.IsNotExist(err) {
		t.Error("预览文件应随 promote 删除")
	}
	if d.RemoteURL != "/media/a.png" {
		t.Errorf("远端 URL 错误: %q", d.RemoteURL)
	}
}

func TestPendingFilesForDeferredSubmission(t *testing.T) {
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	c := svc.NewCollector("compounds", false, false, 0)

	added, _ := c.Add(context.Background(), []client.FileUpload{
		{Name: "a.png", Data: fakePNG(64)},
		{Name: "b.jpg", Data: fakeJPEG(64)},
	})
	added[1].promote(client.UploadResult{ID: "1", Image: "/media/b.jpg"})

	files := c.PendingFiles()
	if len(files) != 1 || files[0].Name != "a.png" {
		t.Errorf("只有未持久化的草稿该进合并提交, got %+v", files)
	}
}

func TestPreviewWrittenUnderServiceDir(t *testing.T) {
	repo := repository.NewSessionRepo(setupUploadTestDB(t))
	clients := NewClientFactory("http://127.0.0.1:0", "http://127.0.0.1:0", repo)
	dir := t.TempDir()
	svc := NewUploadService(clients, dir)

	c := svc.NewCollector("compounds", false, false, 0)
	added, _ := c.Add(context.Background(), []client.FileUpload{
		{Name: "a.png", Data: fakePNG(64)},
	})

	if filepath.Dir(added[0].previewPath) != dir {
		t.Errorf("预览文件应落在服务目录下: %s", added[0].previewPath)
	}
	data, err := os.ReadFile(added[0].previewPath)
	if err != nil || !bytes.Equal(data, fakePNG(64)) {
		t.Error("预览文件内容应与原始字节一致")
	}
}

// ==================== 按 URL 导入 ====================

func TestImportFromURLDownloadsAndUploads(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(fakePNG(128))
	}))
	defer source.Close()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("上游应收到 multipart 表单: %v", err)
		}
		if r.FormValue("type") != "compounds" {
			t.Errorf("判别字段错误: %q", r.FormValue("type"))
		}
		_, fh, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("上游应收到 image 文件: %v", err)
		}
		// 文件名从 URL 路径推导
		if fh.Filename != "villa.png" {
			t.Errorf("文件名错误: %q", fh.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 5, "image": "media/villa.png"}`))
	}))
	defer upstream.Close()

	svc := newTestUploadService(t, upstream.URL+"/")
	got, err := svc.ImportFromURL(sessionCtx(), "compounds", source.URL+"/photos/villa.png")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "5" || got.Image != "/media/villa.png" {
		t.Errorf("导入结果错误: %+v", got)
	}
}

func TestImportFromURLRejectsNonImageBeforeUpstream(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>definitely not an image</html>"))
	}))
	defer source.Close()

	var touched int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&touched, 1)
	}))
	defer upstream.Close()

	svc := newTestUploadService(t, upstream.URL+"/")
	if _, err := svc.ImportFromURL(sessionCtx(), "compounds", source.URL+"/page.html"); err == nil {
		t.Fatal("非图片内容应被拒绝")
	}
	if atomic.LoadInt32(&touched) != 0 {
		t.Error("校验失败的导入不应触达上游")
	}
}

func TestImportFromURLRejectsOversizedDownload(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(fakePNG(utils.MaxImageSize + 1))
	}))
	defer source.Close()

	// 上游地址不可达: 超限文件必须在本地就被拒绝
	svc := newTestUploadService(t, "http://127.0.0.1:0")
	if _, err := svc.ImportFromURL(sessionCtx(), "compounds", source.URL+"/huge.png"); err == nil {
		t.Fatal("超过 5MB 的网络图片应被拒绝")
	}
}

// ==================== 立即上传与部分成功 ====================

func TestImmediateUploadPartialSuccess(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 第一个文件成功，第二个失败
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"images": [{"id": 1, "image": "/media/ok.png"}]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer upstream.Close()

	svc := newTestUploadService(t, upstream.URL+"/")
	resp, err := svc.UploadBatch(sessionCtx(), "compounds", []client.FileUpload{
		{Name: "ok.png", Data: fakePNG(64)},
		{Name: "fail.png", Data: fakePNG(64)},
	})
	if err != nil {
		t.Fatalf("批量上传不应整体失败: %v", err)
	}

	if len(resp.Uploaded) != 1 || resp.Uploaded[0].Image != "/media/ok.png" {
		t.Errorf("成功的文件应保留: %+v", resp.Uploaded)
	}
	if len(resp.Failed) != 1 {
		t.Errorf("失败的文件应逐个上报: %+v", resp.Failed)
	}
}

func TestUploadBatchValidatesBeforeAnyNetwork(t *testing.T) {
	var touched int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&touched, 1)
	}))
	defer upstream.Close()

	svc := newTestUploadService(t, upstream.URL+"/")
	_, err := svc.UploadBatch(sessionCtx(), "compounds", []client.FileUpload{
		{Name: "good.png", Data: fakePNG(64)},
		{Name: "bad.bin", Data: []byte("junk")},
	})
	if err == nil {
		t.Fatal("含非法文件的批次应在校验阶段拒绝")
	}
	if atomic.LoadInt32(&touched) != 0 {
		t.Error("校验失败时不应发出任何网络请求")
	}
}

func TestImmediateCollectorPromotesDrafts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images": [{"id": "7", "image": "media/up.png"}]}`))
	}))
	defer upstream.Close()

	svc := newTestUploadService(t, upstream.URL+"/")
	c := svc.NewCollector("compounds", false, true, 0)

	added, err := c.Add(sessionCtx(), []client.FileUpload{
		{Name: "a.png", Data: fakePNG(64)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(added) != 1 || added[0].Pending() {
		t.Fatalf("立即模式成功后草稿应切到持久化状态: %+v", added)
	}
	if added[0].RemoteURL != "/media/up.png" {
		t.Errorf("媒体路径应归一化: %q", added[0].RemoteURL)
	}
}
