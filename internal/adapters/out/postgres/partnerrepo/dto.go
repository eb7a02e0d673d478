package partnerrepo

import (
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"

	"github.com/shopspring/decimal"
)

// Range kinds stored in partner_ranges.kind.
const (
	rangeKindPickup   = "PICKUP"
	rangeKindDelivery = "DELIVERY"
)

// PartnerDTO is the database representation of a courier partner, flat
// rate card included. Coverage ranges and lane estimates live in child
// tables.
type PartnerDTO struct {
	Code             string            `gorm:"type:varchar(32);primaryKey"`
	Name             string            `gorm:"type:varchar(128);not null"`
	BaseRate         decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	PerKgRate        decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	FuelSurchargePct decimal.Decimal   `gorm:"type:numeric(5,4);not null"`
	CODFixedCharge   decimal.Decimal   `gorm:"type:numeric(10,2);not null;column:cod_fixed_charge"`
	CODPct           decimal.Decimal   `gorm:"type:numeric(5,4);not null;column:cod_pct"`
	ReliabilityScore float64           `gorm:"not null"`
	DefaultTATDays   int               `gorm:"not null;column:default_tat_days"`
	Ranges           []PartnerRangeDTO `gorm:"foreignKey:PartnerCode;constraint:OnDelete:CASCADE"`
	Lanes            []PartnerLaneDTO  `gorm:"foreignKey:PartnerCode;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM.
func (PartnerDTO) TableName() string {
	return "partners"
}

// PartnerRangeDTO is one pickup or delivery pincode range of a partner.
type PartnerRangeDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	PartnerCode string `gorm:"type:varchar(32);not null;index"`
	Kind        string `gorm:"type:varchar(16);not null"`
	FromPincode string `gorm:"type:varchar(6);not null"`
	ToPincode   string `gorm:"type:varchar(6);not null"`
}

// TableName overrides the table name used by GORM.
func (PartnerRangeDTO) TableName() string {
	return "partner_ranges"
}

// PartnerLaneDTO is one per-lane transit estimate of a partner, keyed by
// the "originZone-destZone" lane form.
type PartnerLaneDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	PartnerCode string `gorm:"type:varchar(32);not null;index"`
	Lane        string `gorm:"type:varchar(8);not null"`
	TATDays     int    `gorm:"not null;column:tat_days"`
}

// TableName overrides the table name used by GORM.
func (PartnerLaneDTO) TableName() string {
	return "partner_lanes"
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	rateCard, err := partner.NewRateCard(
		dto.BaseRate, dto.PerKgRate, dto.FuelSurchargePct, dto.CODFixedCharge, dto.CODPct)
	if err != nil {
		return nil, err
	}

	var pickupRanges, deliveryRanges []kernel.PincodeRange
	for _, rangeDTO := range dto.Ranges {
		pincodeRange, err := rangeToDomain(rangeDTO)
		if err != nil {
			return nil, err
		}
		if rangeDTO.Kind == rangeKindPickup {
			pickupRanges = append(pickupRanges, pincodeRange)
		} else {
			deliveryRanges = append(deliveryRanges, pincodeRange)
		}
	}

	laneTATDays := make(map[string]int, len(dto.Lanes))
	for _, laneDTO := range dto.Lanes {
		laneTATDays[laneDTO.Lane] = laneDTO.TATDays
	}

	return partner.NewPartner(
		dto.Code,
		dto.Name,
		pickupRanges,
		deliveryRanges,
		rateCard,
		dto.ReliabilityScore,
		laneTATDays,
		dto.DefaultTATDays,
	)
}

func rangeToDomain(dto PartnerRangeDTO) (kernel.PincodeRange, error) {
	from, err := kernel.NewPincode(dto.FromPincode)
	if err != nil {
		return kernel.PincodeRange{}, err
	}
	to, err := kernel.NewPincode(dto.ToPincode)
	if err != nil {
		return kernel.PincodeRange{}, err
	}
	return kernel.NewPincodeRange(from, to)
}
