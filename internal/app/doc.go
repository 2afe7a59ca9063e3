// Package app provides the application service layer.
//
// Service.Analyze runs one sentiment batch: admissibility for every item first,
// then bounded concurrent classification, reassembled in request order.
// Depends on domain interfaces, not concrete implementations.
package app
