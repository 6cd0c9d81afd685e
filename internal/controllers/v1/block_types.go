package v1

import (
	"fmt"
	neturl "net/url"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
)

// BlockEditable represents all user configurable parameters
type BlockEditable struct {
	BlockID     string          `json:"blockId" example:"A-1" default:""`            // Unique code of the block
	Description string          `json:"description" example:"Corner stall" default:""` // Free text description
	Rate        decimal.Decimal `json:"rate" example:"5000" default:"0"`             // Default monthly rate
}

func (editable BlockEditable) model() models.Block {
	return models.Block{
		BlockID:     editable.BlockID,
		Description: editable.Description,
		Rate:        editable.Rate,
	}
}

type BlockLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/blocks/3"`             // The block itself
	Tenants string `json:"tenants" example:"https://example.com/api/v1/tenants?block=A-1"` // Tenants renting this block
}

type Block struct {
	models.Model
	BlockEditable
	Links BlockLinks `json:"links"`
}

func newBlock(c *gin.Context, model models.Block) Block {
	url := httputil.RequestPathV1(c)

	return Block{
		Model: model.Model,
		BlockEditable: BlockEditable{
			BlockID:     model.BlockID,
			Description: model.Description,
			Rate:        model.Rate,
		},
		Links: BlockLinks{
			Self:    fmt.Sprintf("%s/blocks/%d", url, model.ID),
			Tenants: fmt.Sprintf("%s/tenants?block=%s", url, neturl.QueryEscape(model.BlockID)),
		},
	}
}

type BlockListResponse struct {
	Data       []Block     `json:"data"`                                                // List of Blocks
	Error      *string     `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                          // Pagination information
}

type BlockCreateResponse struct {
	Data  []BlockResponse `json:"data"`                                                // List of the created Blocks or their respective error
	Error *string         `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

func (b *BlockCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BlockResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BlockResponse struct {
	Data  *Block  `json:"data"`                                                // Data for the Block
	Error *string `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

type BlockQueryFilter struct {
	Search string `form:"search" filterField:"false"` // By string in code or description
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Block returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Blocks to return. Defaults to 50.
}
