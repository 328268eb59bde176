package domain

// TodoItem is the lightweight todo shape used by the plant view. It is
// deliberately separate from Task: the snapshot is a wholesale blob the
// client reads and replaces as one unit.
type TodoItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
	TimeSpent int64  `json:"timeSpent"`
	Locked    bool   `json:"locked"`
}

// Snapshot is the single per-user blob of plant UI state.
type Snapshot struct {
	Todos         []TodoItem `json:"todos"`
	SelectedPlant string     `json:"selectedPlant"`
	PlantGrowth   float64    `json:"plantGrowth"`
}

// DefaultSnapshot is what every new account starts with and what reads
// fall back to when no row exists.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Todos:         []TodoItem{},
		SelectedPlant: "tree",
		PlantGrowth:   0,
	}
}
