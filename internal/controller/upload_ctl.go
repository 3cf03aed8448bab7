package controller

import (
	"errors"
	"io"
	"mime/multipart"

	"estate_portal_v1/internal/api/dto"
	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/service"
	"estate_portal_v1/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	uploadService *service.UploadService
}

func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// readFiles 读出 multipart 表单里的图片文件
// 读取阶段就卡体积上限，超限文件不会整个读进内存
func readFiles(headers []*multipart.FileHeader) ([]client.FileUpload, error) {
	files := make([]client.FileUpload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(io.LimitReader(f, utils.MaxImageSize+1))
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, client.FileUpload{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

// UploadImages 批量上传图片
// @Summary 批量上传图片到上游，先整批本地校验，网络阶段按文件独立
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Param type formData string true "实体类别 (properties/compounds/...)"
// @Param files formData file true "图片文件，可多个"
// @Success 200 {object} dto.BulkUploadResponse
// @Router /api/admin/upload/images [post]
func (ctrl *UploadController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	kind := c.PostForm("type")
	if _, err := client.ParseKind(kind); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的实体类别: " + kind})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(400, gin.H{"code": 400, "message": "未选择文件"})
		return
	}

	files, err := readFiles(headers)
	if err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "文件读取失败: " + err.Error()})
		return
	}

	resp, err := ctrl.uploadService.UploadBatch(c.Request.Context(), kind, files)
	if err != nil {
		// 校验失败: 整批拒绝，一个字节都没发出去
		c.JSON(400, gin.H{"code": 400, "message": err.Error()})
		return
	}

	replyData(c, resp)
}

// ImportImageByURL 按 URL 导入网络图片
// @Summary 下载网络图片并上传到上游，复用本地上传的类型与大小校验
// @Tags Upload
// @Security BearerAuth
// @Accept json
// @Success 200 {object} dto.UploadedImage
// @Router /api/admin/upload/import [post]
func (ctrl *UploadController) ImportImageByURL(c *gin.Context) {
	var req dto.ImportImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	if _, err := client.ParseKind(req.Type); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的实体类别: " + req.Type})
		return
	}

	uploaded, err := ctrl.uploadService.ImportFromURL(c.Request.Context(), req.Type, req.URL)
	if err != nil {
		var apiErr *client.APIError
		if errors.Is(err, service.ErrSessionExpired) || errors.As(err, &apiErr) {
			replyErr(c, err)
			return
		}
		// 下载不到或校验不过都是入参问题
		c.JSON(400, gin.H{"code": 400, "message": err.Error()})
		return
	}
	replyData(c, uploaded)
}
