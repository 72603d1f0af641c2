package world

// News item types the successor understands. Anything outside this range in
// a legacy queue truncates the copy at that point.
const (
	NewsItemNull = iota
	NewsItemRide
	NewsItemPeepOnRide
	NewsItemPeep
	NewsItemMoney
	NewsItemBlank
	NewsItemResearch
	NewsItemPeeps
	NewsItemAward
	NewsItemGraph

	NewsItemTypeCount
)

// MaxNewsItems is the queue capacity, matching the legacy table.
const MaxNewsItems = 61

// NewsItem is one queued message. A Type of NewsItemNull terminates the
// queue.
type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      string
}

// NewsQueue is the fixed-capacity message queue.
type NewsQueue struct {
	Items [MaxNewsItems]NewsItem
}

// Clear empties the queue.
func (q *NewsQueue) Clear() {
	for i := range q.Items {
		q.Items[i] = NewsItem{}
	}
}
