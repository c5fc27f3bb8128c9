package store

// Order ENUMs
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Lane ENUMs
const (
	LaneStateOK        = "ok"
	LaneStateWatchlist = "watchlist"
	LaneStateSave      = "save"
	LaneStateArchive   = "archive"
)

// LaneStates lists every lifecycle state a lane may hold.
var LaneStates = []string{LaneStateOK, LaneStateWatchlist, LaneStateSave, LaneStateArchive}

// IsValidLaneState reports whether state is one of LaneStates.
func IsValidLaneState(state string) bool {
	for _, s := range LaneStates {
		if s == state {
			return true
		}
	}
	return false
}
