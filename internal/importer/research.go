package importer

import (
	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

// Research list terminators.
const (
	researchItemEnd       = 0xFFFFFFFF
	researchItemSeparator = 0xFFFFFFFE
)

// translateResearch clears all invented state, then asserts every bit the
// legacy bitsets carry. Each bit index selects a 32-bit word (index >> 5)
// and a bit within it (index & 31).
func translateResearch(d *s6.Data, w *world.World) {
	r := &w.Research
	r.ClearAll()

	for i := 0; i < world.MaxRideTypes; i++ {
		if bitSet(d.ResearchedRideTypes[:], i) {
			r.SetRideTypeInvented(i)
		}
	}
	for i := 0; i < world.MaxRideEntries; i++ {
		if bitSet(d.ResearchedRideEntries[:], i) {
			r.SetRideEntryInvented(i)
		}
	}
	for i := 0; i < world.MaxSceneryEntries; i++ {
		if bitSet(d.ResearchedSceneryItems[:], i) {
			r.SetSceneryItemInvented(i)
		}
	}

	for _, item := range d.ResearchItems {
		if item.RawValue == researchItemEnd {
			break
		}
		r.Items = append(r.Items, world.ResearchItem{
			RawValue: item.RawValue,
			Category: item.Category,
		})
	}

	r.FundingTypes = d.ActiveResearchTypes
	r.ProgressStage = d.ResearchProgressStage
	r.Progress = d.ResearchProgress
	r.LastItem = d.LastResearchedItemSubject
	r.NextItem = d.NextResearchItem
	r.NextCategory = d.NextResearchCategory
	r.ExpectedDay = d.NextResearchExpectedDay
	r.ExpectedMonth = d.NextResearchExpectedMonth
	r.Level = d.CurrentResearchLevel
}

func bitSet(words []uint32, idx int) bool {
	return words[idx>>5]&(1<<(idx&31)) != 0
}
