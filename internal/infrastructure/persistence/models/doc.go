// Package models contains GORM persistence models for the aggregates whose domain types carry
// no table mapping of their own: assets, counters, settings and the read-only directory tables.
// Ledger entries and lifecycle documents map directly through tags on their domain structs.
package models
