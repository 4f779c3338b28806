package tui

type mode int

const (
	modeBrowse mode = iota
	// modeMenu: a tile's action dialog is open (exclusive).
	modeMenu
	modeAdd
	modeEdit
)

// autoplayTickMsg carries the autoplay sequence it was scheduled under;
// stale sequences are dropped by the navigator.
type autoplayTickMsg struct{ seq int }

// cameraTickMsg drives one camera-flight animation; a newer flight bumps the
// camera sequence and orphans the old tick loop.
type cameraTickMsg struct{ seq int }
