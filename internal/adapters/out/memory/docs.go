// Package memory provides in-memory implementations of the engine's
// collaborator ports: the inventory store, the partner catalog and the
// route table. They back DB-less operation and fast tests.
//
// The inventory store serializes reservation attempts per (warehouse, SKU)
// key with a lazily created per-key mutex; distinct keys reserve in
// parallel. The catalog and route table are read-mostly master data behind
// a read-write lock.
package memory
