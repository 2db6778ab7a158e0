package component

// WavePhase is the state of the wave scheduler.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveArmed
	WaveDraining
	WaveComplete
)

func (p WavePhase) String() string {
	switch p {
	case WaveArmed:
		return "armed"
	case WaveDraining:
		return "draining"
	case WaveComplete:
		return "complete"
	default:
		return "idle"
	}
}

// SpawnEntry is one scheduled enemy spawn.
type SpawnEntry struct {
	EnemyID string
	Offset  float64 // seconds since wave start
}

// Wave holds the expanded schedule of the running wave.
type Wave struct {
	Index    int // 0-based index into the configured waves
	Phase    WavePhase
	Clock    float64
	Schedule []SpawnEntry
	Next     int // first entry not spawned yet
}

// Pending returns how many entries have not spawned yet.
func (w *Wave) Pending() int {
	return len(w.Schedule) - w.Next
}

// InProgress reports whether the wave has started and not completed.
func (w *Wave) InProgress() bool {
	return w != nil && (w.Phase == WaveArmed || w.Phase == WaveDraining)
}
