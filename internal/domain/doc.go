// Package domain defines the core domain types and interfaces.
//
// Batches, per-item classifications and the scoring contract live here.
// No implementation code - just contracts.
package domain
