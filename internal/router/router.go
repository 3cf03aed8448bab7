package router

import (
	"estate_portal_v1/internal/controller"
	"estate_portal_v1/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "estate_portal_v1/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Auth      *controller.AuthController
	Property  *controller.PropertyController
	Compound  *controller.CompoundController
	Developer *controller.DeveloperController
	Search    *controller.SearchController
	Content   *controller.ContentController
	Taxonomy  *controller.TaxonomyController
	Lead      *controller.LeadController
	Upload    *controller.UploadController
	Entity    *controller.EntityController
}

// Config 路由配置
type Config struct {
	SessionLoader middleware.SessionLoader
	PreviewDir    string
}

// SetupRouter 创建引擎并注册所有路由
func SetupRouter(ctls *Controllers, cfg *Config) *gin.Engine {
	r := gin.Default()
	InitRoutes(r, ctls, cfg)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers, cfg *Config) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. 本地预览文件 (未持久化图片的临时预览)
	r.Static("/media/previews", cfg.PreviewDir)

	// 3. 公开 API
	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", ctls.Property.GetProperties)
			properties.GET("/featured", ctls.Property.GetFeatured)
			properties.GET("/new-launches", ctls.Property.GetNewLaunches)
			properties.GET("/slug/:slug", ctls.Property.GetPropertyBySlug)
			properties.GET("/:id", ctls.Property.GetProperty)
		}

		compounds := api.Group("/compounds")
		{
			compounds.GET("", ctls.Compound.GetCompounds)
			compounds.GET("/:id", ctls.Compound.GetCompound)
			compounds.GET("/:id/properties", ctls.Compound.GetCompoundProperties)
		}

		developers := api.Group("/developers")
		{
			developers.GET("", ctls.Developer.GetDevelopers)
			developers.GET("/:id", ctls.Developer.GetDeveloper)
			developers.GET("/:id/compounds", ctls.Developer.GetDeveloperCompounds)
		}

		search := api.Group("/search")
		{
			search.GET("", ctls.Search.Search)
			search.GET("/options", ctls.Search.SearchOptions)
		}

		blog := api.Group("/blog-posts")
		{
			blog.GET("", ctls.Content.GetPosts)
			blog.GET("/slug/:slug", ctls.Content.GetPostBySlug)
		}
		api.GET("/authors", ctls.Content.GetAuthors)

		api.GET("/locations", ctls.Taxonomy.GetLocations)
		api.GET("/amenities", ctls.Taxonomy.GetAmenities)
		api.GET("/partners", ctls.Taxonomy.GetPartners)
		api.GET("/testimonials", ctls.Taxonomy.GetTestimonials)

		api.POST("/contact-submissions", ctls.Lead.SubmitContact)
	}

	// 4. 管理 API
	// 登录不走鉴权；其余全部经过 JWT 校验 + 会话加载
	admin := r.Group("/api/admin")
	admin.POST("/auth/login", ctls.Auth.Login)

	authed := admin.Group("")
	authed.Use(middleware.JWTAuth(), middleware.SessionAuth(cfg.SessionLoader))
	{
		authed.POST("/auth/logout", ctls.Auth.Logout)
		authed.GET("/auth/me", ctls.Auth.Me)

		authed.GET("/properties", ctls.Property.GetAdminProperties)
		authed.POST("/properties", ctls.Property.CreateProperty)
		authed.PATCH("/properties/:id", ctls.Property.UpdateProperty)

		authed.GET("/compounds", ctls.Compound.GetAdminCompounds)
		authed.POST("/compounds", ctls.Compound.CreateCompound)
		authed.PATCH("/compounds/:id", ctls.Compound.UpdateCompound)

		authed.POST("/developers", ctls.Developer.CreateDeveloper)
		authed.PATCH("/developers/:id", ctls.Developer.UpdateDeveloper)

		authed.GET("/blog-posts", ctls.Content.GetAdminPosts)
		authed.GET("/blog-posts/:id", ctls.Content.GetAdminPost)
		authed.POST("/blog-posts", ctls.Content.CreatePost)
		authed.PUT("/blog-posts/:id", ctls.Content.UpdatePost)

		authed.POST("/authors", ctls.Content.CreateAuthor)
		authed.PUT("/authors/:id", ctls.Content.UpdateAuthor)

		authed.POST("/locations", ctls.Taxonomy.CreateLocation)
		authed.PUT("/locations/:id", ctls.Taxonomy.UpdateLocation)
		authed.POST("/amenities", ctls.Taxonomy.CreateAmenity)
		authed.PUT("/amenities/:id", ctls.Taxonomy.UpdateAmenity)
		authed.POST("/partners", ctls.Taxonomy.CreatePartner)
		authed.PUT("/partners/:id", ctls.Taxonomy.UpdatePartner)
		authed.POST("/testimonials", ctls.Taxonomy.CreateTestimonial)
		authed.PUT("/testimonials/:id", ctls.Taxonomy.UpdateTestimonial)

		authed.GET("/contact-submissions", ctls.Lead.GetContacts)

		authed.POST("/upload/images", ctls.Upload.UploadImages)
		authed.POST("/upload/import", ctls.Upload.ImportImageByURL)

		// 统一删除: 所有实体共用一个入口
		// DELETE 方法下没有静态路由，通配不会和上面的冲突
		authed.DELETE("/:entity/:id", ctls.Entity.DeleteEntity)
	}
}
