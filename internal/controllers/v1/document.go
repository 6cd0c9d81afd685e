package v1

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/documents"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/report"
	"github.com/spacerent/backend/internal/types"
	"gorm.io/gorm"
)

// RegisterDocumentRoutes registers the printable document routes with
// the RouterGroup that is passed.
func RegisterDocumentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/receipt/:id", httputil.OptionsGet)
	r.GET("/receipt/:id", GetReceipt)

	r.OPTIONS("/report", httputil.OptionsGet)
	r.GET("/report", GetReport)
}

// ReportQueryFilter selects the transactions printed in the report.
type ReportQueryFilter struct {
	Kind      string     `form:"kind" filterField:"false"`      // "all", "payment" or "expense". Defaults to "all".
	FromDate  types.Date `form:"fromDate" filterField:"false"`  // Transactions on or after this date
	UntilDate types.Date `form:"untilDate" filterField:"false"` // Transactions on or before this date
	Format    string     `form:"format" filterField:"false"`    // "pdf" or "xlsx". Defaults to "pdf".
}

// @Summary		Payment receipt
// @Description	Renders the acknowledgement receipt for a payment as a PDF.
// @Tags			Documents
// @Produce		application/pdf
// @Success		200	{file}		file
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/documents/receipt/{id} [get]
func GetReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var owner models.Owner
	if err := models.DB.First(&owner).Error; err != nil &&
		!errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	pdf, err := documents.Receipt(payment, owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("Receipt_%s_%s.pdf",
		strings.ReplaceAll(payment.TenantName, " ", "_"), payment.PaymentDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary		Financial report
// @Description	Renders the filtered transaction list as a PDF table with totals, or as an XLSX workbook with format=xlsx.
// @Tags			Documents
// @Produce		application/pdf
// @Success		200	{file}		file
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			kind		query	string	false	"Restrict to 'payment' or 'expense' records"
// @Param			fromDate	query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Param			format		query	string	false	"Output format, 'pdf' or 'xlsx'. Defaults to 'pdf'."
// @Router			/v1/documents/report [get]
func GetReport(c *gin.Context) {
	var filter ReportQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	if filter.Kind == "" {
		filter.Kind = "all"
	}
	if filter.Format == "" {
		filter.Format = "pdf"
	}
	if !slices.Contains([]string{"pdf", "xlsx"}, filter.Format) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errUnknownReportFormat.Error(),
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var payments []models.Payment
	if filter.Kind != "expense" {
		q := models.DB.Order("payment_date DESC, id DESC")
		if slices.Contains(setFields, "FromDate") {
			q = q.Where("payment_date >= ?", filter.FromDate)
		}
		if slices.Contains(setFields, "UntilDate") {
			q = q.Where("payment_date <= ?", filter.UntilDate)
		}
		if err := q.Find(&payments).Error; err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	var expenses []models.Expense
	if filter.Kind != "payment" {
		q := models.DB.Order("date DESC, id DESC")
		if slices.Contains(setFields, "FromDate") {
			q = q.Where("date >= ?", filter.FromDate)
		}
		if slices.Contains(setFields, "UntilDate") {
			q = q.Where("date <= ?", filter.UntilDate)
		}
		if err := q.Find(&expenses).Error; err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	if filter.Format == "xlsx" {
		raw, err := documents.Excel(payments, expenses)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=\"spacerent_report.xlsx\"")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
		return
	}

	var owner models.Owner
	_ = models.DB.First(&owner).Error

	opts := documents.SummaryOptions{
		BusinessName: owner.BusinessName,
		Kind:         filter.Kind,
		GeneratedAt:  time.Now(),
	}
	if slices.Contains(setFields, "FromDate") {
		opts.FromDate = filter.FromDate.String()
	}
	if slices.Contains(setFields, "UntilDate") {
		opts.UntilDate = filter.UntilDate.String()
	}

	pdf, err := documents.Summary(report.Merge(payments, expenses), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\"spacerent_report.pdf\"")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
