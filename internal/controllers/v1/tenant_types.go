package v1

import (
	"fmt"
	neturl "net/url"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
)

// TenantEditable represents all user configurable parameters
type TenantEditable struct {
	Name          string          `json:"name" example:"Ana Reyes" default:""`                        // Name of the tenant
	BlockID       string          `json:"blockId" example:"A-1" default:""`                           // Code of the rented block
	Phone         string          `json:"phone" example:"+639171234567" default:""`                   // Phone number for reminders
	Email         string          `json:"email" example:"ana@example.com" default:""`                 // Email address for reminders
	ContractStart types.Date      `json:"contractStart" example:"2024-01-01"`                         // First day of the lease
	ContractEnd   types.Date      `json:"contractEnd" example:"2024-12-31"`                           // Last day of the lease
	LeaseAmount   decimal.Decimal `json:"leaseAmount" example:"5000" default:"0"`                     // Monthly rent
	DueDay        int             `json:"dueDay" example:"5" default:"1" binding:"omitempty,dueday"`  // Day of month the rent is due, 1 to 31
}

func (editable TenantEditable) model() models.Tenant {
	return models.Tenant{
		Name:          editable.Name,
		BlockID:       editable.BlockID,
		Phone:         editable.Phone,
		Email:         editable.Email,
		ContractStart: editable.ContractStart,
		ContractEnd:   editable.ContractEnd,
		LeaseAmount:   editable.LeaseAmount,
		DueDay:        editable.DueDay,
	}
}

type TenantLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/tenants/17"`             // The tenant itself
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?search=Ana"` // Payments recorded for this tenant
}

type Tenant struct {
	models.Model
	TenantEditable
	Links TenantLinks `json:"links"`
}

func newTenant(c *gin.Context, model models.Tenant) Tenant {
	url := httputil.RequestPathV1(c)

	return Tenant{
		Model: model.Model,
		TenantEditable: TenantEditable{
			Name:          model.Name,
			BlockID:       model.BlockID,
			Phone:         model.Phone,
			Email:         model.Email,
			ContractStart: model.ContractStart,
			ContractEnd:   model.ContractEnd,
			LeaseAmount:   model.LeaseAmount,
			DueDay:        model.DueDay,
		},
		Links: TenantLinks{
			Self:     fmt.Sprintf("%s/tenants/%d", url, model.ID),
			Payments: fmt.Sprintf("%s/payments?search=%s", url, neturl.QueryEscape(model.Name)),
		},
	}
}

type TenantListResponse struct {
	Data       []Tenant    `json:"data"`                                                // List of Tenants
	Error      *string     `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                          // Pagination information
}

type TenantCreateResponse struct {
	Data  []TenantResponse `json:"data"`                                                // List of the created Tenants or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

func (t *TenantCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TenantResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TenantResponse struct {
	Data  *Tenant `json:"data"`                                                // Data for the Tenant
	Error *string `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

type TenantQueryFilter struct {
	BlockID string `form:"block" filterField:"false"`  // By block code, glob patterns allowed
	DueDay  int    `form:"dueDay"`                     // By due day of month
	Search  string `form:"search" filterField:"false"` // By string in name, phone or email
	Offset  uint   `form:"offset" filterField:"false"` // The offset of the first Tenant returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`  // Maximum number of Tenants to return. Defaults to 50.
}

func (f TenantQueryFilter) model() models.Tenant {
	return models.Tenant{
		DueDay: f.DueDay,
	}
}
