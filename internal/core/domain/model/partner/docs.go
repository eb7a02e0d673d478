// Package partner provides the courier partner domain model: the partner
// entity with its serviceability footprint and reliability history, and the
// commercial rate card used to quote a shipment.
//
// Partners and rate cards are reference data maintained outside the engine;
// within the engine they are immutable inputs to partner selection, so the
// selector can evaluate candidates concurrently without locking.
package partner
