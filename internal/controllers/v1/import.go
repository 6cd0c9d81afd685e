package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"gorm.io/gorm"
)

func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", CreateImport)
	}
}

// backup mirrors the export format for reading it back.
type backup struct {
	Version string                     `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import a backup
// @Description	Replaces all resources on the instance with the contents of a backup created by the export endpoint.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			file	formData	file	true	"The backup JSON file"
// @Router			/v1/import [post]
func CreateImport(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	var b backup
	if err := json.Unmarshal(raw, &b); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidBody.Error(),
		})
		return
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	steps := []func() error{
		func() error { return restoreResources[models.Tenant](tx, b, "Tenant") },
		func() error { return restoreResources[models.Payment](tx, b, "Payment") },
		func() error { return restoreResources[models.Expense](tx, b, "Expense") },
		func() error { return restoreResources[models.Block](tx, b, "Block") },
		func() error { return restoreResources[models.Owner](tx, b, "Owner") },
		func() error { return restoreResources[models.User](tx, b, "User") },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			tx.Rollback()
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}

// restoreResources replaces all resources of one type with the ones
// from the backup. Resource types missing from the backup are left
// untouched.
func restoreResources[R any](tx *gorm.DB, b backup, name string) error {
	raw, ok := b.Data[name]
	if !ok {
		return nil
	}

	var resources []R
	if err := json.Unmarshal(raw, &resources); err != nil {
		return fmt.Errorf("%w: resource type %s", httputil.ErrInvalidBody, name)
	}

	var model R
	if err := tx.Unscoped().Where("true").Delete(&model).Error; err != nil {
		return err
	}

	if len(resources) == 0 {
		return nil
	}

	return tx.CreateInBatches(&resources, 100).Error
}
