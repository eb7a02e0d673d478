// Package sla provides the value objects of the delivery-date promise:
// the profile an order presents to the SLA engine, the promise computed
// from it, and the compliance snapshot derived on every status query.
//
// A Promise is computed once per order and treated as immutable unless
// explicitly recalculated. Snapshots are cheap derived views: they combine
// the promise, the wall clock, and the order's milestone timeline, and are
// recomputed on demand rather than stored.
package sla
