package player

import "context"

// ProjectionRepository describes the read-only projection pool the draft core
// consumes. Loading the pool is owned by the excluded ETL pipeline.
type ProjectionRepository interface {
	ListProjections(ctx context.Context) ([]Player, error)
}
