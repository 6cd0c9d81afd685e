package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"gorm.io/gorm"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Tenant | models.Payment | models.Expense | models.Block](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes a resource by its ID.
func deleteResource[R models.Tenant | models.Payment | models.Expense | models.Block](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var resource R
	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// searchFilter adds a substring match on the passed columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	var condition *gorm.DB
	for i, column := range columns {
		clause := db.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search))
		if i == 0 {
			condition = clause
		} else {
			condition = condition.Or(clause)
		}
	}

	return query.Where(condition)
}

// filterBlockPattern keeps the resources whose block matches the glob
// pattern. Matching runs in memory since sqlite has no glob parameters
// for the patterns used here.
func filterBlockPattern[R any](resources []R, pattern string, blockID func(R) string) []R {
	if pattern == "" {
		return resources
	}

	matched := make([]R, 0, len(resources))
	for _, resource := range resources {
		if glob.Glob(pattern, blockID(resource)) {
			matched = append(matched, resource)
		}
	}

	return matched
}
