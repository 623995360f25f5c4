package domain

const (
	CollectionUser = "users"
)
const (
	CollectionSong = "songs"
)
const (
	CollectionPlaylist = "playlists"
)
const (
	CollectionMoodLog = "mood_logs"
)
const (
	CollectionPlaybackLog = "playback_logs"
)
const (
	CollectionGame = "games"
)
const (
	CollectionGameSession = "game_sessions"
)
