package http

import (
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/commands"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/queries"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/sla"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/services"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one SKU/quantity pair of an incoming order.
type OrderLineRequest struct {
	Sku string `json:"sku"`
	Qty int    `json:"qty"`
}

// OrchestrateOrderRequest is the order intake payload. PlacedAt defaults
// to the current time and OrderId is generated when omitted.
type OrchestrateOrderRequest struct {
	OrderID            string             `json:"orderId,omitempty"`
	Lines              []OrderLineRequest `json:"lines"`
	OriginPincode      string             `json:"originPincode"`
	DestinationPincode string             `json:"destinationPincode"`
	OrderType          string             `json:"orderType"`
	PaymentMode        string             `json:"paymentMode"`
	CodAmount          string             `json:"codAmount,omitempty"`
	WeightKg           float64            `json:"weightKg"`
	PlacedAt           *time.Time         `json:"placedAt,omitempty"`
	PreferredWarehouse string             `json:"preferredWarehouse,omitempty"`
}

// QuotePromiseRequest asks for a promise quote without creating an order.
type QuotePromiseRequest struct {
	OrderType          string     `json:"orderType"`
	OriginPincode      string     `json:"originPincode"`
	DestinationPincode string     `json:"destinationPincode"`
	PlacedAt           *time.Time `json:"placedAt,omitempty"`
}

// Promise is the wire form of a delivery promise.
type Promise struct {
	PromisedDeliveryDate *time.Time `json:"promisedDeliveryDate,omitempty"`
	TatDays              int        `json:"tatDays"`
	NetworkTransitDays   int        `json:"networkTransitDays"`
	Risk                 string     `json:"risk"`
	IsAchievable         bool       `json:"isAchievable"`
}

// WarehouseAllocation is one warehouse visit of a line allocation.
type WarehouseAllocation struct {
	WarehouseCode string `json:"warehouseCode"`
	AllocatedQty  int    `json:"allocatedQty"`
	HopLevel      int    `json:"hopLevel"`
}

// LineAllocation is the allocation outcome for one order line.
type LineAllocation struct {
	Sku          string                `json:"sku"`
	RequestedQty int                   `json:"requestedQty"`
	ShortfallQty int                   `json:"shortfallQty"`
	Allocations  []WarehouseAllocation `json:"allocations"`
}

// Allocation is the wire form of a full allocation result.
type Allocation struct {
	Lines         []LineAllocation `json:"lines"`
	Strategy      string           `json:"strategy"`
	TotalHops     int              `json:"totalHops"`
	SplitRequired bool             `json:"splitRequired"`
	Success       bool             `json:"success"`
	Simulated     bool             `json:"simulated"`
}

// PartnerScore is the wire form of one scored courier partner.
type PartnerScore struct {
	PartnerCode      string  `json:"partnerCode"`
	PartnerName      string  `json:"partnerName"`
	Rate             string  `json:"rate"`
	EstimatedTatDays int     `json:"estimatedTatDays"`
	CostScore        float64 `json:"costScore"`
	SpeedScore       float64 `json:"speedScore"`
	ReliabilityScore float64 `json:"reliabilityScore"`
	FinalScore       float64 `json:"finalScore"`
	SlaCompatible    bool    `json:"slaCompatible"`
}

// PartnerSelection is the wire form of a partner selection result.
type PartnerSelection struct {
	Scores      []PartnerScore `json:"scores"`
	Recommended *PartnerScore  `json:"recommended,omitempty"`
}

// StepOutcome is the wire form of one pipeline step record.
type StepOutcome struct {
	Step       string `json:"step"`
	Status     string `json:"status"`
	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"`
}

// OrchestrationResponse is the outcome of full order orchestration.
type OrchestrationResponse struct {
	OrderID          string           `json:"orderId"`
	Promise          Promise          `json:"promise"`
	Allocation       Allocation       `json:"allocation"`
	PartnerSelection PartnerSelection `json:"partnerSelection"`
	Steps            []StepOutcome    `json:"steps"`
	Degraded         bool             `json:"degraded"`
}

// ComplianceResponse is the point-in-time compliance view of an order.
type ComplianceResponse struct {
	OrderID         string    `json:"orderId"`
	Promise         Promise   `json:"promise"`
	Status          string    `json:"status"`
	Critical        bool      `json:"critical"`
	ElapsedFraction float64   `json:"elapsedFraction"`
	EvaluatedAt     time.Time `json:"evaluatedAt"`
}

// UndeliveredOrder is one in-flight order row.
type UndeliveredOrder struct {
	OrderID              string     `json:"orderId"`
	DestinationPincode   string     `json:"destinationPincode"`
	Stage                string     `json:"stage"`
	PlacedAt             time.Time  `json:"placedAt"`
	PromisedDeliveryDate *time.Time `json:"promisedDeliveryDate,omitempty"`
}

func promiseFromDomain(promise sla.Promise) Promise {
	dto := Promise{
		TatDays:            promise.TATDays,
		NetworkTransitDays: promise.NetworkTransitDays,
		Risk:               promise.Risk.String(),
		IsAchievable:       promise.IsAchievable,
	}
	if promise.IsAchievable {
		date := promise.PromisedDeliveryDate
		dto.PromisedDeliveryDate = &date
	}
	return dto
}

func allocationFromDomain(result services.AllocationResult) Allocation {
	lines := make([]LineAllocation, len(result.Lines))
	for i, line := range result.Lines {
		allocations := make([]WarehouseAllocation, len(line.Allocations))
		for j, allocation := range line.Allocations {
			allocations[j] = WarehouseAllocation{
				WarehouseCode: allocation.WarehouseCode,
				AllocatedQty:  allocation.AllocatedQty,
				HopLevel:      allocation.HopLevel,
			}
		}
		lines[i] = LineAllocation{
			Sku:          line.SKU,
			RequestedQty: line.RequestedQty,
			ShortfallQty: line.ShortfallQty,
			Allocations:  allocations,
		}
	}
	return Allocation{
		Lines:         lines,
		Strategy:      result.Strategy.String(),
		TotalHops:     result.TotalHops,
		SplitRequired: result.SplitRequired,
		Success:       result.Success,
		Simulated:     result.Simulated,
	}
}

func partnerScoreFromDomain(score services.PartnerScore) PartnerScore {
	return PartnerScore{
		PartnerCode:      score.PartnerCode,
		PartnerName:      score.PartnerName,
		Rate:             score.Rate.String(),
		EstimatedTatDays: score.EstimatedTATDays,
		CostScore:        score.CostScore,
		SpeedScore:       score.SpeedScore,
		ReliabilityScore: score.ReliabilityScore,
		FinalScore:       score.FinalScore,
		SlaCompatible:    score.SLACompatible,
	}
}

func partnerSelectionFromDomain(result services.PartnerSelectionResult) PartnerSelection {
	scores := make([]PartnerScore, len(result.Scores))
	for i, score := range result.Scores {
		scores[i] = partnerScoreFromDomain(score)
	}
	selection := PartnerSelection{Scores: scores}
	if result.Recommended != nil {
		recommended := partnerScoreFromDomain(*result.Recommended)
		selection.Recommended = &recommended
	}
	return selection
}

func orchestrationFromDomain(result commands.OrchestrationResult) OrchestrationResponse {
	steps := make([]StepOutcome, len(result.Steps))
	for i, step := range result.Steps {
		steps[i] = StepOutcome{
			Step:       step.Step,
			Status:     step.Status.String(),
			DurationMs: step.Duration.Milliseconds(),
			Error:      step.Error,
		}
	}
	return OrchestrationResponse{
		OrderID:          result.OrderID.String(),
		Promise:          promiseFromDomain(result.Promise),
		Allocation:       allocationFromDomain(result.Allocation),
		PartnerSelection: partnerSelectionFromDomain(result.PartnerSelection),
		Steps:            steps,
		Degraded:         result.Degraded,
	}
}

func undeliveredFromDomain(row queries.GetUndeliveredOrdersQueryResponse) UndeliveredOrder {
	return UndeliveredOrder{
		OrderID:              row.ID.String(),
		DestinationPincode:   row.DestinationPincode.String(),
		Stage:                row.Stage.String(),
		PlacedAt:             row.PlacedAt,
		PromisedDeliveryDate: row.PromisedDeliveryDate,
	}
}
