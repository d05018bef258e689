package journeyplanner

import (
	"github.com/sourcegraph/conc/iter"
)

// MatrixQuery is one origin/destination pair of a batch planning run.
type MatrixQuery struct {
	Origin      string
	Destination string
}

// MatrixResult pairs each query with its outcome. Exactly one of Route and
// Err is set.
type MatrixResult struct {
	Query MatrixQuery
	Route *RouteResult
	Err   error
}

// PlanMatrix plans every pair concurrently over the shared graph snapshot.
// The graph is immutable once built so the searches need no coordination.
func (p *Planner) PlanMatrix(queries []MatrixQuery) []MatrixResult {
	return iter.Map(queries, func(query *MatrixQuery) MatrixResult {
		route, err := p.PlanRoute(query.Origin, query.Destination)

		return MatrixResult{
			Query: *query,
			Route: route,
			Err:   err,
		}
	})
}
