package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
)

// RegisterTenantRoutes registers the routes for Tenants with
// the RouterGroup that is passed.
func RegisterTenantRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTenantList)
		r.GET("", GetTenants)
		r.POST("", CreateTenants)
	}

	// Tenant with ID
	{
		r.OPTIONS("/:id", OptionsTenantDetail)
		r.GET("/:id", GetTenant)
		r.PATCH("/:id", UpdateTenant)
		r.DELETE("/:id", DeleteTenant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Router			/v1/tenants [options]
func OptionsTenantList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [options]
func OptionsTenantDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Tenant{})
}

// @Summary		Create tenants
// @Description	Creates new tenants
// @Tags			Tenants
// @Accept			json
// @Produce		json
// @Success		201		{object}	TenantCreateResponse
// @Failure		400		{object}	TenantCreateResponse
// @Failure		500		{object}	TenantCreateResponse
// @Param			tenants	body		[]TenantEditable	true	"Tenants"
// @Router			/v1/tenants [post]
func CreateTenants(c *gin.Context) {
	var tenants []TenantEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &tenants)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TenantCreateResponse{}

	for _, editable := range tenants {
		tenant := editable.model()

		err := models.DB.Create(&tenant).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTenant(c, tenant)
		r.Data = append(r.Data, TenantResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List tenants
// @Description	Returns a list of tenants
// @Tags			Tenants
// @Produce		json
// @Success		200	{object}	TenantListResponse
// @Failure		500	{object}	TenantListResponse
// @Router			/v1/tenants [get]
// @Param			block	query	string	false	"Filter by block code, glob patterns allowed"
// @Param			dueDay	query	int		false	"Filter by due day of month"
// @Param			search	query	string	false	"Search for this text in name, phone and email"
// @Param			offset	query	uint	false	"The offset of the first Tenant returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Tenants to return. Defaults to 50."
func GetTenants(c *gin.Context) {
	var filter TenantQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var tenants []models.Tenant

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = searchFilter(models.DB, q, filter.Search, "name", "phone", "email")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to all Tenants and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&tenants).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	// The block pattern cannot be part of the database query
	tenants = filterBlockPattern(tenants, filter.BlockID, func(t models.Tenant) string { return t.BlockID })

	apiResources := make([]Tenant, 0)
	for _, tenant := range tenants {
		apiResources = append(apiResources, newTenant(c, tenant))
	}

	c.JSON(http.StatusOK, TenantListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tenant
// @Description	Returns a specific tenant
// @Tags			Tenants
// @Produce		json
// @Success		200	{object}	TenantResponse
// @Failure		400	{object}	TenantResponse
// @Failure		404	{object}	TenantResponse
// @Failure		500	{object}	TenantResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [get]
func GetTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &apiResource})
}

// @Summary		Update tenant
// @Description	Update an existing tenant. Only values to be updated need to be specified.
// @Tags			Tenants
// @Accept			json
// @Produce		json
// @Success		200		{object}	TenantResponse
// @Failure		400		{object}	TenantResponse
// @Failure		404		{object}	TenantResponse
// @Failure		500		{object}	TenantResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tenant	body		TenantEditable	true	"Tenant"
// @Router			/v1/tenants/{id} [patch]
func UpdateTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TenantEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	var data TenantEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&tenant).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &apiResource})
}

// @Summary		Delete tenant
// @Description	Deletes a tenant. Payments recorded for the tenant are kept.
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [delete]
func DeleteTenant(c *gin.Context) {
	deleteResource[models.Tenant](c)
}
