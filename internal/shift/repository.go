package shift

import "context"

// Repository defines the storage interface for shifts and the entities they reference.
type Repository interface {
	// ListShifts returns every shift in id order.
	ListShifts(ctx context.Context) ([]*Shift, error)

	// GetShift retrieves a shift by ID. Returns nil, nil if it does not exist.
	GetShift(ctx context.Context, id int64) (*Shift, error)

	// CreateShift stores a new shift built from the draft and returns it with its id set.
	CreateShift(ctx context.Context, d Draft) (*Shift, error)

	// UpdateShift replaces all mutable fields of shift id with the draft.
	// Returns nil, nil if no shift has that id.
	UpdateShift(ctx context.Context, id int64, d Draft) (*Shift, error)

	// Entities returns the seeded workers, services and clients.
	Entities(ctx context.Context) ([]Entity, error)

	// Close releases any resources held by the repository.
	Close() error
}
