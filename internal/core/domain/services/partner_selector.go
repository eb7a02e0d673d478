package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/ports"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

const maxDimensionScore = 100.0

// PartnerScore is the scored evaluation of one candidate partner for a
// shipment. Dimension scores are normalized to [0, 100] within the
// candidate set: the cheapest partner gets a cost score of 100 and the
// fastest a speed score of 100, with the rest scaled proportionally.
type PartnerScore struct {
	PartnerCode      string
	PartnerName      string
	Rate             decimal.Decimal
	EstimatedTATDays int
	CostScore        float64
	SpeedScore       float64
	ReliabilityScore float64
	FinalScore       float64

	// SLACompatible is true when the partner's estimated lane TAT fits
	// inside the order's promised turnaround.
	SLACompatible bool
}

// PartnerSelectionResult ranks every serviceable partner for a shipment.
type PartnerSelectionResult struct {
	// Scores holds all evaluated partners, best composite score first.
	Scores []PartnerScore

	// Recommended is the best-scored SLA-compatible partner, or nil when
	// no candidate fits the promise. A nil recommendation is a business
	// outcome; callers escalate it rather than treat it as a failure.
	Recommended *PartnerScore
}

// PartnerSelector scores and ranks logistics partners for a shipment.
//
// The composite score weighs cost, speed and reliability per the engine
// config. Scoring is relative to the candidate set, so a partner's score
// is only meaningful within one selection run.
type PartnerSelector struct {
	catalog ports.PartnerCatalog
	config  EngineConfig
}

// NewPartnerSelector creates a partner selector over the partner catalog.
//
// Parameters:
//   - catalog: The logistics partner master
//   - config: Validated engine tuning (scoring weights)
//
// Returns:
//   - *PartnerSelector: The selector, ready for use
//   - error: Validation error when catalog is nil or config is invalid
func NewPartnerSelector(catalog ports.PartnerCatalog, config EngineConfig) (*PartnerSelector, error) {
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &PartnerSelector{catalog: catalog, config: config}, nil
}

// SelectPartner evaluates every partner serving the order's lane and
// returns them ranked by composite score.
//
// An empty candidate set returns an empty result with a nil error: no
// serviceable partner is a business outcome. Rate card quoting covers
// weight-based charges, fuel surcharge and COD handling fees.
//
// Parameters:
//   - ctx: Carries the collaborator deadline for the catalog lookup
//   - ord: The order being shipped (must be valid)
//   - promise: The delivery promise used for the SLA compatibility check
//
// Returns:
//   - PartnerSelectionResult: Ranked scores and the recommendation
//   - error: Catalog failures or invalid candidate rate cards
func (s *PartnerSelector) SelectPartner(
	ctx context.Context,
	ord *order.Order,
	promise sla.Promise,
) (PartnerSelectionResult, error) {
	if err := ord.Validate(); err != nil {
		return PartnerSelectionResult{}, err
	}

	candidates, err := s.catalog.GetServiceable(ctx, ord.OriginPincode(), ord.DestinationPincode())
	if err != nil {
		return PartnerSelectionResult{}, err
	}
	if len(candidates) == 0 {
		return PartnerSelectionResult{}, nil
	}

	scores, err := s.scoreCandidates(ord, promise, candidates)
	if err != nil {
		return PartnerSelectionResult{}, err
	}

	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if cmp := a.Rate.Cmp(b.Rate); cmp != 0 {
			return cmp < 0
		}
		if a.EstimatedTATDays != b.EstimatedTATDays {
			return a.EstimatedTATDays < b.EstimatedTATDays
		}
		return a.PartnerCode < b.PartnerCode
	})

	result := PartnerSelectionResult{Scores: scores}
	for _, score := range scores {
		if score.SLACompatible {
			recommended := score
			result.Recommended = &recommended
			break
		}
	}
	return result, nil
}

// scoreCandidates quotes every candidate and normalizes the dimension
// scores against the best quote and the best lane TAT in the set.
func (s *PartnerSelector) scoreCandidates(
	ord *order.Order,
	promise sla.Promise,
	candidates []*partner.Partner,
) ([]PartnerScore, error) {
	scores := make([]PartnerScore, 0, len(candidates))
	for _, p := range candidates {
		rate, err := p.RateCard().Quote(ord.WeightKg(), ord.PaymentMode(), ord.CODAmount())
		if err != nil {
			return nil, err
		}
		tat := p.EstimatedTATDays(ord.OriginPincode(), ord.DestinationPincode())
		if tat < 1 {
			tat = 1
		}
		scores = append(scores, PartnerScore{
			PartnerCode:      p.Code(),
			PartnerName:      p.Name(),
			Rate:             rate,
			EstimatedTATDays: tat,
			ReliabilityScore: p.ReliabilityScore(),
			SLACompatible:    promise.IsAchievable && tat <= promise.TATDays,
		})
	}

	minRate := scores[0].Rate
	minTAT := scores[0].EstimatedTATDays
	for _, score := range scores[1:] {
		if score.Rate.Cmp(minRate) < 0 {
			minRate = score.Rate
		}
		if score.EstimatedTATDays < minTAT {
			minTAT = score.EstimatedTATDays
		}
	}

	for i := range scores {
		scores[i].CostScore = normalizeCost(minRate, scores[i].Rate)
		scores[i].SpeedScore = maxDimensionScore * float64(minTAT) / float64(scores[i].EstimatedTATDays)
		scores[i].FinalScore = s.config.Weights.Cost*scores[i].CostScore +
			s.config.Weights.Speed*scores[i].SpeedScore +
			s.config.Weights.Reliability*scores[i].ReliabilityScore
	}
	return scores, nil
}

// normalizeCost maps the cheapest rate to 100 and scales others down
// proportionally. A zero rate only happens when every component of the
// rate card is zero; such a partner is trivially cheapest.
func normalizeCost(minRate decimal.Decimal, rate decimal.Decimal) float64 {
	if !rate.IsPositive() {
		return maxDimensionScore
	}
	ratio, _ := minRate.Div(rate).Float64()
	return maxDimensionScore * ratio
}
