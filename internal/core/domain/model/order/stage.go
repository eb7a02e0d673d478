package order

import (
	"fmt"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/errs"
)

// Stage represents a step of the fixed ten-stage fulfillment lifecycle.
// It implements a closed state machine with an explicit allowed-transition
// table, so invalid stage jumps are rejected at validation time rather than
// silently stored as free-form strings.
//
// Stage transitions are strictly forward and linear:
//
//	OrderReceived -> InventoryAllocation -> PartnerSelection ->
//	PicklistGeneration -> Picking -> Packing -> LabelGeneration ->
//	Dispatch -> InTransit -> Delivered
//
// The orchestration engine itself only populates the first three stages;
// the remaining seven form the contract consumed by downstream warehouse
// and courier systems.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// OrderReceived is the initial stage when an order enters orchestration.
	OrderReceived

	// InventoryAllocation indicates warehouse stock has been resolved for
	// the order's lines.
	InventoryAllocation

	// PartnerSelection indicates a courier partner decision has been made.
	PartnerSelection

	// PicklistGeneration indicates a warehouse work order was generated.
	PicklistGeneration

	// Picking indicates warehouse staff are collecting the items.
	Picking

	// Packing indicates the shipment is being packed.
	Packing

	// LabelGeneration indicates the courier label and AWB were produced.
	LabelGeneration

	// Dispatch indicates the shipment was handed over to the courier.
	Dispatch

	// InTransit indicates the shipment is moving through the courier network.
	InTransit

	// Delivered is the final stage; no further transitions are allowed.
	Delivered
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:        "UNKNOWN",
		OrderReceived:       "ORDER_RECEIVED",
		InventoryAllocation: "INVENTORY_ALLOCATION",
		PartnerSelection:    "PARTNER_SELECTION",
		PicklistGeneration:  "PICKLIST_GENERATION",
		Picking:             "PICKING",
		Packing:             "PACKING",
		LabelGeneration:     "LABEL_GENERATION",
		Dispatch:            "DISPATCH",
		InTransit:           "IN_TRANSIT",
		Delivered:           "DELIVERED",
	}
}

func getValidStageStrings() map[Stage]string {
	strings := getStageStrings()
	delete(strings, StageUnknown)
	return strings
}

// getAllowedTransitions returns the closed transition table of the
// lifecycle. Every stage has exactly one successor except Delivered,
// which is terminal.
func getAllowedTransitions() map[Stage]Stage {
	return map[Stage]Stage{
		OrderReceived:       InventoryAllocation,
		InventoryAllocation: PartnerSelection,
		PartnerSelection:    PicklistGeneration,
		PicklistGeneration:  Picking,
		Picking:             Packing,
		Packing:             LabelGeneration,
		LabelGeneration:     Dispatch,
		Dispatch:            InTransit,
		InTransit:           Delivered,
	}
}

// StageFromString parses the wire form of a stage.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a valid stage", s))
}

// Validate checks if the Stage value is valid.
//
// All ten lifecycle stages are valid; StageUnknown (0) and any other
// values are invalid. This method is used to ensure Stage values from
// external sources (database, API) are valid before use.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the wire form of the stage, e.g. "INVENTORY_ALLOCATION".
// Implements fmt.Stringer and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the successor stage in the lifecycle.
// Returns an error for Delivered (terminal) and for invalid stages.
func (s Stage) Next() (Stage, error) {
	next, ok := getAllowedTransitions()[s]
	if !ok {
		return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%s has no next stage", s.String()))
	}
	return next, nil
}

// CanTransitionTo reports whether moving from this stage to target is an
// allowed transition per the lifecycle table.
func (s Stage) CanTransitionTo(target Stage) bool {
	next, ok := getAllowedTransitions()[s]
	return ok && next == target
}

// TransitionTo validates and performs the transition to target.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (StageUnknown, error) when the transition violates the lifecycle table
func (s Stage) TransitionTo(target Stage) (Stage, error) {
	if err := target.Validate(); err != nil {
		return StageUnknown, err
	}

	if !s.CanTransitionTo(target) {
		return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()))
	}

	return target, nil
}

// IsTerminal reports whether the stage is the final lifecycle stage.
func (s Stage) IsTerminal() bool {
	return s == Delivered
}
