package entities

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	Rank     int
	UserID   int64
	Username string
	Points   int
	Level    int
	Streak   int
}
