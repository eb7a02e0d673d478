// Package services contains the decision engines at the heart of order
// orchestration. Each engine is a stateless domain service: it takes an
// order and reference data through collaborator ports, applies the
// business rules, and returns a result record. The three engines are the
// SLA engine (delivery promises and compliance tracking), the allocation
// engine (warehouse stock distribution with multi-warehouse hopping) and
// the partner selector (weighted scoring of logistics partners).
//
// Engines never own infrastructure. Reservation state, stock levels,
// rate cards and route tables live behind the ports package; the engines
// only decide. All engines share a single validated EngineConfig so that
// hop limits, scoring weights and risk thresholds stay consistent across
// one orchestration run.
package services
