package dto

// PriceQuoteRequest asks for the employer-side price of a worker payout.
// The upper bound is pricing.MaxPayoutCents.
type PriceQuoteRequest struct {
	PayoutCents int64 `form:"payout_cents" validate:"gte=0,lte=900719925474099"`
}

type PriceQuoteResponse struct {
	PayoutCents int64  `json:"payout_cents"`
	FeeCents    int64  `json:"fee_cents"`
	TotalCents  int64  `json:"total_cents"`
	Payout      string `json:"payout"`
	Fee         string `json:"fee"`
	Total       string `json:"total"`
}

// DistanceRequest carries two optional coordinates; a missing one yields an unknown distance.
type DistanceRequest struct {
	FromLat *float64 `form:"from_lat"`
	FromLon *float64 `form:"from_lon"`
	ToLat   *float64 `form:"to_lat"`
	ToLon   *float64 `form:"to_lon"`
}

type DistanceResponse struct {
	// Nil when either coordinate is missing.
	Kilometers *float64 `json:"km"`
}
