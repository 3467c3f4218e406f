package handlers

import (
	"math"
	"net/http"

	"shiftmatch/internal/geo"
	"shiftmatch/internal/pricing"
	"shiftmatch/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CollaboratorHandler exposes the pricing and distance helpers the clients display next to jobs.
type CollaboratorHandler struct {
	validator *validator.Validate
}

func NewCollaboratorHandler(validate *validator.Validate) *CollaboratorHandler {
	return &CollaboratorHandler{validator: validate}
}

// PriceQuote godoc
//
//	@Summary	Employer price for a worker payout
//	@Tags		pricing
//	@Produce	json
//	@Param		payout_cents	query		int	true	"Worker payout in cents"
//	@Success	200				{object}	dto.PriceQuoteResponse
//	@Router		/pricing/quote [get]
func (h *CollaboratorHandler) PriceQuote(c *gin.Context) {
	var req dto.PriceQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	fee := pricing.FeeCents(req.PayoutCents)
	total := pricing.EmployerTotalCents(req.PayoutCents)
	c.JSON(http.StatusOK, dto.PriceQuoteResponse{
		PayoutCents: req.PayoutCents,
		FeeCents:    fee,
		TotalCents:  total,
		Payout:      pricing.FormatCents(req.PayoutCents),
		Fee:         pricing.FormatCents(fee),
		Total:       pricing.FormatCents(total),
	})
}

// Distance godoc
//
//	@Summary		Great-circle distance between two points
//	@Description	km is null when either point is incomplete.
//	@Tags			geo
//	@Produce		json
//	@Success		200	{object}	dto.DistanceResponse
//	@Router			/distance [get]
func (h *CollaboratorHandler) Distance(c *gin.Context) {
	var req dto.DistanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	km := geo.Distance(
		&geo.Coordinate{Lat: req.FromLat, Lon: req.FromLon},
		&geo.Coordinate{Lat: req.ToLat, Lon: req.ToLon},
	)
	// JSON has no infinity or NaN.
	var resp dto.DistanceResponse
	if !math.IsInf(km, 0) && !math.IsNaN(km) {
		resp.Kilometers = &km
	}
	c.JSON(http.StatusOK, resp)
}
