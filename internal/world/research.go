package world

// Research capacities. Invented sets are plain index sets here; the legacy
// bitset packing stays in the decoder.
const (
	MaxRideTypes      = 256
	MaxRideEntries    = 256
	MaxSceneryEntries = 1792
	MaxResearchItems  = 500
)

// ResearchItem is one entry of the invention list.
type ResearchItem struct {
	RawValue uint32
	Category uint8
}

// Research is the invention state: what is already available, the ordered
// research list, and the in-flight project.
type Research struct {
	InventedRideTypes    [MaxRideTypes]bool
	InventedRideEntries  [MaxRideEntries]bool
	InventedSceneryItems [MaxSceneryEntries]bool

	Items []ResearchItem

	FundingTypes  uint8
	ProgressStage uint8
	Progress      uint16
	LastItem      uint32
	NextItem      uint32
	NextCategory  uint8
	ExpectedDay   uint8
	ExpectedMonth uint8
	Level         uint8
}

// ClearAll marks everything uninvented and empties the list.
func (r *Research) ClearAll() {
	for i := range r.InventedRideTypes {
		r.InventedRideTypes[i] = false
	}
	for i := range r.InventedRideEntries {
		r.InventedRideEntries[i] = false
	}
	for i := range r.InventedSceneryItems {
		r.InventedSceneryItems[i] = false
	}
	r.Items = r.Items[:0]
	r.FundingTypes = 0
	r.ProgressStage = 0
	r.Progress = 0
	r.LastItem = 0
	r.NextItem = 0
	r.NextCategory = 0
	r.ExpectedDay = 0
	r.ExpectedMonth = 0
	r.Level = 0
}

func (r *Research) SetRideTypeInvented(idx int) {
	if idx >= 0 && idx < MaxRideTypes {
		r.InventedRideTypes[idx] = true
	}
}

func (r *Research) SetRideEntryInvented(idx int) {
	if idx >= 0 && idx < MaxRideEntries {
		r.InventedRideEntries[idx] = true
	}
}

func (r *Research) SetSceneryItemInvented(idx int) {
	if idx >= 0 && idx < MaxSceneryEntries {
		r.InventedSceneryItems[idx] = true
	}
}

func (r *Research) IsRideTypeInvented(idx int) bool {
	return idx >= 0 && idx < MaxRideTypes && r.InventedRideTypes[idx]
}

func (r *Research) IsRideEntryInvented(idx int) bool {
	return idx >= 0 && idx < MaxRideEntries && r.InventedRideEntries[idx]
}

func (r *Research) IsSceneryItemInvented(idx int) bool {
	return idx >= 0 && idx < MaxSceneryEntries && r.InventedSceneryItems[idx]
}
