package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
)

// RegisterBlockRoutes registers the routes for Blocks with
// the RouterGroup that is passed.
func RegisterBlockRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBlockList)
		r.GET("", GetBlocks)
		r.POST("", CreateBlocks)
	}

	// Block with ID
	{
		r.OPTIONS("/:id", OptionsBlockDetail)
		r.GET("/:id", GetBlock)
		r.PATCH("/:id", UpdateBlock)
		r.DELETE("/:id", DeleteBlock)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Blocks
// @Success		204
// @Router			/v1/blocks [options]
func OptionsBlockList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Blocks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/blocks/{id} [options]
func OptionsBlockDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Block{})
}

// @Summary		Create blocks
// @Description	Creates new blocks. Block codes must be unique.
// @Tags			Blocks
// @Accept			json
// @Produce		json
// @Success		201		{object}	BlockCreateResponse
// @Failure		400		{object}	BlockCreateResponse
// @Failure		500		{object}	BlockCreateResponse
// @Param			blocks	body		[]BlockEditable	true	"Blocks"
// @Router			/v1/blocks [post]
func CreateBlocks(c *gin.Context) {
	var blocks []BlockEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &blocks)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BlockCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BlockCreateResponse{}

	for _, editable := range blocks {
		block := editable.model()

		err := models.DB.Create(&block).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBlock(c, block)
		r.Data = append(r.Data, BlockResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List blocks
// @Description	Returns a list of blocks
// @Tags			Blocks
// @Produce		json
// @Success		200	{object}	BlockListResponse
// @Failure		500	{object}	BlockListResponse
// @Router			/v1/blocks [get]
// @Param			search	query	string	false	"Search for this text in code and description"
// @Param			offset	query	uint	false	"The offset of the first Block returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Blocks to return. Defaults to 50."
func GetBlocks(c *gin.Context) {
	var filter BlockQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var blocks []models.Block

	// Always sort by code
	q := models.DB.Order("block_id ASC")

	q = searchFilter(models.DB, q, filter.Search, "block_id", "description")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Blocks and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&blocks).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BlockListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BlockListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Block, 0)
	for _, block := range blocks {
		apiResources = append(apiResources, newBlock(c, block))
	}

	c.JSON(http.StatusOK, BlockListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get block
// @Description	Returns a specific block
// @Tags			Blocks
// @Produce		json
// @Success		200	{object}	BlockResponse
// @Failure		400	{object}	BlockResponse
// @Failure		404	{object}	BlockResponse
// @Failure		500	{object}	BlockResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/blocks/{id} [get]
func GetBlock(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	var block models.Block
	err = models.DB.First(&block, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBlock(c, block)
	c.JSON(http.StatusOK, BlockResponse{Data: &apiResource})
}

// @Summary		Update block
// @Description	Update an existing block. Only values to be updated need to be specified.
// @Tags			Blocks
// @Accept			json
// @Produce		json
// @Success		200		{object}	BlockResponse
// @Failure		400		{object}	BlockResponse
// @Failure		404		{object}	BlockResponse
// @Failure		500		{object}	BlockResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			block	body		BlockEditable	true	"Block"
// @Router			/v1/blocks/{id} [patch]
func UpdateBlock(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	var block models.Block
	err = models.DB.First(&block, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BlockEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	var data BlockEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&block).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BlockResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBlock(c, block)
	c.JSON(http.StatusOK, BlockResponse{Data: &apiResource})
}

// @Summary		Delete block
// @Description	Deletes a block. Tenants and records referring to its code are kept.
// @Tags			Blocks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/blocks/{id} [delete]
func DeleteBlock(c *gin.Context) {
	deleteResource[models.Block](c)
}
