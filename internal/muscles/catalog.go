package muscles

const (
	ViewFront = "front"
	ViewBack  = "back"
)

type Muscle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	View string `json:"view"`
}

// catalog holds the full anatomical chart the selector works with. The
// ids match the core API muscle taxonomy.
var catalog = []Muscle{
	{ID: "chest", Name: "Chest", View: ViewFront},
	{ID: "shoulders", Name: "Shoulders", View: ViewFront},
	{ID: "biceps", Name: "Biceps", View: ViewFront},
	{ID: "forearms", Name: "Forearms", View: ViewFront},
	{ID: "abs", Name: "Abs", View: ViewFront},
	{ID: "obliques", Name: "Obliques", View: ViewFront},
	{ID: "quads", Name: "Quads", View: ViewFront},
	{ID: "calves", Name: "Calves", View: ViewFront},
	{ID: "traps", Name: "Traps", View: ViewBack},
	{ID: "lats", Name: "Lats", View: ViewBack},
	{ID: "lower_back", Name: "Lower Back", View: ViewBack},
	{ID: "rear_delts", Name: "Rear Delts", View: ViewBack},
	{ID: "triceps", Name: "Triceps", View: ViewBack},
	{ID: "glutes", Name: "Glutes", View: ViewBack},
	{ID: "hamstrings", Name: "Hamstrings", View: ViewBack},
}

var catalogByID = func() map[string]Muscle {
	byID := make(map[string]Muscle, len(catalog))
	for _, m := range catalog {
		byID[m.ID] = m
	}
	return byID
}()

func Catalog() []Muscle {
	all := make([]Muscle, len(catalog))
	copy(all, catalog)
	return all
}

func IsValidID(id string) bool {
	_, ok := catalogByID[id]
	return ok
}

func IsValidView(view string) bool {
	return view == ViewFront || view == ViewBack
}
