package types

// Canonical collection names for the five entity types. These are the keys
// of the JSON export envelope's data object, the section names (uppercased)
// in delimited exports, and the names the schema registry resolves aliases
// against.
const (
	Games        = "games"
	PlaySessions = "playsessions"
	Uploads      = "uploads"
	Chapters     = "chapters"
	Memos        = "memos"
)

// Collections lists all canonical collection names in export order.
// Delimited and SQL exports emit sections in exactly this order.
var Collections = []string{
	Games,
	PlaySessions,
	Uploads,
	Chapters,
	Memos,
}

// Play status values for Game.playStatus.
const (
	StatusUnplayed  = "unplayed"
	StatusPlaying   = "playing"
	StatusCompleted = "completed"
	StatusOnHold    = "on_hold"
	StatusDropped   = "dropped"
)

// PlayStatuses lists the recognized playStatus values in declaration order.
var PlayStatuses = []string{
	StatusUnplayed,
	StatusPlaying,
	StatusCompleted,
	StatusOnHold,
	StatusDropped,
}
