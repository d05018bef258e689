package journeyplanner

import (
	"errors"
	"fmt"
)

// ErrNoPathFound is the normal outcome for a disconnected station pair: the
// search frontier was exhausted without reaching the destination.
var ErrNoPathFound = errors.New("no path found between origin and destination")

// ErrDataUnavailable means the schedule store could not be read or held no
// stations, which is fatal for the planning session.
var ErrDataUnavailable = errors.New("schedule data unavailable")

// NodeNotFoundError reports an origin or destination identifier that is not a
// station in the graph. The search is never attempted in that case.
type NodeNotFoundError struct {
	ID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("station %s is not in the network graph", e.ID)
}
