package handler

import (
	"net/http"

	"fruitarians-api/internal/usecase/article"
	"fruitarians-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	service *article.Service
}

func NewArticleHandler(service *article.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	articles := router.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/:id", h.GetByID)
	}
}

// List godoc
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200  {object}  utils.ArticleListResponse{result=[]article.ArticleResponse}
// @Router       /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.ArticleListResponse{
		Errors:    false,
		Result:    result.Items,
		TotalData: result.Total,
		Message:   "Retrive all data article",
	})
}

// GetByID godoc
// @Summary      Get an article by its numeric id
// @Tags         articles
// @Produce      json
// @Param        id    path      int     true   "Article id"
// @Param        card  query     string  false  "true to include a random related article"
// @Success      200   {object}  utils.ArticleDetailResponse{data=article.ArticleResponse}
// @Failure      400   {object}  utils.Response
// @Failure      404   {object}  utils.Response
// @Router       /articles/{id} [get]
func (h *ArticleHandler) GetByID(c *gin.Context) {
	withCard := c.Query("card") == "true"

	result, err := h.service.GetByNumber(c.Request.Context(), c.Param("id"), withCard)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := utils.ArticleDetailResponse{
		Errors:  false,
		Data:    result.Article,
		Message: "Get data article random",
	}
	if result.RandomItem != nil {
		resp.RandomItem = result.RandomItem
	}
	c.JSON(http.StatusOK, resp)
}
