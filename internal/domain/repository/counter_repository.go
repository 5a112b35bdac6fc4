// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// BiodataCounter names the counter row backing listing number allocation.
const BiodataCounter = "biodata_id"

// CounterRepository hands out strictly increasing integers. Next is atomic
// at the store level, so two concurrent first-time profile creations can
// never observe the same value.
type CounterRepository interface {
	// Next increments the named counter and returns the new value. A counter
	// that does not exist yet is created at seed and returns seed.
	Next(ctx context.Context, name string, seed int) (int, error)
}
