package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"

	"estate_portal_v1/internal/api/dto"
	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/pkg/utils"

	"github.com/google/uuid"
)

// ==================== 上传草稿 ====================

// 图集模式默认最多 20 张
const DefaultMaxImages = 20

// Draft 一张图片的上传草稿
// 状态二选一: 要么持有原始字节 + 本地预览 (未持久化)，要么只剩远端 URL；
// 切到远端状态时原始字节和预览文件一并丢弃
type Draft struct {
	ID          string
	FileName    string
	ContentType string
	Size        int64

	data        []byte
	PreviewURL  string
	previewPath string

	RemoteURL string
	AltText   string
	RemoteID  string
}

// Pending 是否仍处于未持久化状态
func (d *Draft) Pending() bool {
	return d.RemoteURL == ""
}

// File 取原始文件 (合并提交时塞进 multipart 表单)
func (d *Draft) File() client.FileUpload {
	return client.FileUpload{Name: d.FileName, ContentType: d.ContentType, Data: d.data}
}

// promote 切换到已持久化状态
func (d *Draft) promote(res client.UploadResult) {
	d.RemoteURL = res.Image
	d.RemoteID = res.ID
	d.AltText = res.AltText
	d.data = nil
	d.dropPreview()
}

func (d *Draft) dropPreview() {
	if d.previewPath != "" {
		_ = os.Remove(d.previewPath)
		d.previewPath = ""
		d.PreviewURL = ""
	}
}

// DTO 序列化给前端
func (d *Draft) DTO() dto.DraftImage {
	return dto.DraftImage{
		DraftID:    d.ID,
		FileName:   d.FileName,
		Size:       d.Size,
		SizeLabel:  utils.FormatFileSize(d.Size),
		PreviewURL: d.PreviewURL,
		RemoteURL:  d.RemoteURL,
	}
}

// ==================== UploadService ====================

// UploadService 图片上传服务
// 校验永远在本地先做，不合法的文件一个字节都不会上网络
type UploadService struct {
	clients    *ClientFactory
	previewDir string
}

// NewUploadService 创建上传服务
// previewDir: 本地预览文件目录，由路由挂到 /media/previews 下
func NewUploadService(clients *ClientFactory, previewDir string) *UploadService {
	if err := os.MkdirAll(previewDir, 0o755); err != nil {
		log.Printf("[Upload] 预览目录创建失败: %v", err)
	}
	return &UploadService{clients: clients, previewDir: previewDir}
}

// validateBatch 整批校验: 任何一个文件不合法，整批拒绝
func (s *UploadService) validateBatch(files []client.FileUpload) error {
	if len(files) == 0 {
		return fmt.Errorf("no files selected")
	}
	for _, f := range files {
		if err := utils.ValidateImage(f.Data); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// writePreview 落一份本地预览文件 (对应浏览器里的 object URL)
func (s *UploadService) writePreview(f client.FileUpload) (path, url string, err error) {
	name := uuid.NewString() + previewExt(f.Data)
	path = filepath.Join(s.previewDir, name)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return "", "", err
	}
	return path, "/media/previews/" + name, nil
}

func previewExt(data []byte) string {
	switch utils.DetectImageType(data) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// UploadBatch 立即上传一批图片 (管理端上传接口用)
// 校验失败整批打回；网络上传按文件独立，允许部分成功
func (s *UploadService) UploadBatch(ctx context.Context, kind string, files []client.FileUpload) (*dto.BulkUploadResponse, error) {
	if err := s.validateBatch(files); err != nil {
		return nil, err
	}

	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return nil, ErrSessionExpired
	}
	admin := s.clients.AdminFor(session)

	resp := &dto.BulkUploadResponse{Uploaded: []dto.UploadedImage{}}
	for _, f := range files {
		results, err := client.UploadImages(ctx, admin, kind, []client.FileUpload{f})
		if err != nil {
			// 单个文件失败不影响已成功的
			log.Printf("[Upload] 上传失败 file=%s: %v", f.Name, err)
			if resp.Failed == nil {
				resp.Failed = map[string]string{}
			}
			resp.Failed[f.Name] = err.Error()
			continue
		}
		for _, r := range results {
			resp.Uploaded = append(resp.Uploaded, dto.UploadedImage{
				ID: r.ID, Image: r.Image, AltText: r.AltText,
			})
		}
	}
	return resp, nil
}

// ==================== 按 URL 导入 ====================

// ImportFromURL 下载网络图片并上传到上游
// 下载的字节走与本地上传完全相同的类型和大小校验，不合格不碰上游
func (s *UploadService) ImportFromURL(ctx context.Context, kind, rawURL string) (*dto.UploadedImage, error) {
	data, err := utils.DownloadImage(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%s: %w", rawURL, err)
	}

	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return nil, ErrSessionExpired
	}
	admin := s.clients.AdminFor(session)

	file := client.FileUpload{
		Name:        importFileName(rawURL, data),
		ContentType: utils.DetectImageType(data),
		Data:        data,
	}
	results, err := client.UploadImages(ctx, admin, kind, []client.FileUpload{file})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("empty upload response")
	}
	return &dto.UploadedImage{ID: results[0].ID, Image: results[0].Image, AltText: results[0].AltText}, nil
}

// importFileName 从 URL 路径推导文件名，推不出来就按内容生成一个
func importFileName(rawURL string, data []byte) string {
	if u, err := url.Parse(rawURL); err == nil {
		if name := path.Base(u.Path); name != "" && name != "." && name != "/" {
			return name
		}
	}
	return uuid.NewString() + previewExt(data)
}

// ==================== Collector 上传收集器 ====================

// Collector 一次表单会话的图片收集器
// 单图模式: 新文件整体替换旧的; 图集模式: 追加，超过上限整批拒绝
// AutoUpload 关闭时完全不碰网络，原始文件留给调用方做合并提交
type Collector struct {
	mu sync.Mutex

	svc        *UploadService
	kind       string
	single     bool
	autoUpload bool
	maxImages  int

	drafts []*Draft
}

// NewCollector 创建收集器
// maxImages <= 0 时取默认值: 单图 1，图集 20
func (s *UploadService) NewCollector(kind string, single, autoUpload bool, maxImages int) *Collector {
	if maxImages <= 0 {
		if single {
			maxImages = 1
		} else {
			maxImages = DefaultMaxImages
		}
	}
	return &Collector{
		svc:        s,
		kind:       kind,
		single:     single,
		autoUpload: autoUpload,
		maxImages:  maxImages,
	}
}

// Add 接收一批新文件
// 返回新加入的草稿; 校验或数量超限时整批拒绝，已有状态不变
func (c *Collector) Add(ctx context.Context, files []client.FileUpload) ([]*Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.validateBatch(files); err != nil {
		return nil, err
	}

	if c.single {
		if len(files) > 1 {
			return nil, fmt.Errorf("%w: single mode accepts one file", ErrTooManyFiles)
		}
	} else if len(c.drafts)+len(files) > c.maxImages {
		return nil, fmt.Errorf("%w: you can only upload up to %d images, currently have %d",
			ErrTooManyFiles, c.maxImages, len(c.drafts))
	}

	// 单图模式: 替换语义，旧草稿的预览随之废弃
	if c.single {
		for _, d := range c.drafts {
			d.dropPreview()
		}
		c.drafts = nil
	}

	added := make([]*Draft, 0, len(files))
	for _, f := range files {
		d := &Draft{
			ID:          uuid.NewString(),
			FileName:    f.Name,
			ContentType: utils.DetectImageType(f.Data),
			Size:        int64(len(f.Data)),
			data:        f.Data,
		}

		// 预览先行，与上传成败无关
		if path, url, err := c.svc.writePreview(f); err == nil {
			d.previewPath = path
			d.PreviewURL = url
		} else {
			log.Printf("[Upload] 预览生成失败 file=%s: %v", f.Name, err)
		}

		added = append(added, d)
	}

	// 立即上传模式: 逐个上传，失败的不进集合，成功的不回滚
	if c.autoUpload {
		session := middleware.SessionFromContext(ctx)
		if session == nil {
			for _, d := range added {
				d.dropPreview()
			}
			return nil, ErrSessionExpired
		}
		admin := c.svc.clients.AdminFor(session)

		kept := added[:0]
		var firstErr error
		for _, d := range added {
			results, err := client.UploadImages(ctx, admin, c.kind, []client.FileUpload{d.File()})
			if err != nil || len(results) == 0 {
				if err == nil {
					err = fmt.Errorf("empty upload response")
				}
				log.Printf("[Upload] 上传失败 file=%s: %v", d.FileName, err)
				d.dropPreview()
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			d.promote(results[0])
			kept = append(kept, d)
		}
		added = kept
		c.drafts = append(c.drafts, added...)
		if len(added) == 0 && firstErr != nil {
			return nil, firstErr
		}
		return added, nil
	}

	c.drafts = append(c.drafts, added...)
	return added, nil
}

// Remove 移除一张图 (只动本地状态，绝不发远端删除)
func (c *Collector) Remove(draftID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.drafts {
		if d.ID == draftID {
			d.dropPreview()
			c.drafts = append(c.drafts[:i], c.drafts[i+1:]...)
			return true
		}
	}
	return false
}

// Drafts 当前集合快照
func (c *Collector) Drafts() []*Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Draft(nil), c.drafts...)
}

// Count 当前张数
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.drafts)
}

// PendingFiles 延迟模式下待合并提交的原始文件
func (c *Collector) PendingFiles() []client.FileUpload {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []client.FileUpload
	for _, d := range c.drafts {
		if d.Pending() {
			out = append(out, d.File())
		}
	}
	return out
}
