package usecase

import "context"

// StatsSummary is the public landing page counter block.
type StatsSummary struct {
	TotalBiodatas  int64 `json:"totalBiodatas"`
	MaleBiodatas   int64 `json:"maleBiodatas"`
	FemaleBiodatas int64 `json:"femaleBiodatas"`
	PremiumUsers   int64 `json:"premiumUsers"`
}

// AdminStats extends the summary with revenue figures.
type AdminStats struct {
	StatsSummary
	RevenueCents int64 `json:"revenueCents"`
}

// StatsUsecase defines the interface for platform statistics use cases
type StatsUsecase interface {
	// Summary retrieves the public listing counters.
	Summary(ctx context.Context) (*StatsSummary, error)

	// AdminStats retrieves the counters plus total approved revenue.
	// Admin only.
	AdminStats(ctx context.Context, viewerEmail string) (*AdminStats, error)
}
