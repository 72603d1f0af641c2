package importer

import (
	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

// translateNews copies the fixed-capacity news queue. An item with a type
// outside the recognized set marks the rest of the queue unreadable: that
// slot becomes a null terminator and copying stops. Later entries are
// dropped even if they would individually parse; the legacy engine behaved
// this way and saves may depend on it.
func (im *Importer) translateNews(d *s6.Data, w *world.World) {
	for i := range d.NewsItems {
		src := &d.NewsItems[i]
		if src.Type >= world.NewsItemTypeCount {
			w.News.Items[i] = world.NewsItem{Type: world.NewsItemNull}
			im.result.NewsTruncatedAt = i
			im.result.warnf("news queue truncated at entry %d (type %d)", i, src.Type)
			return
		}
		w.News.Items[i] = world.NewsItem{
			Type:      src.Type,
			Flags:     src.Flags,
			Assoc:     src.Assoc,
			Ticks:     src.Ticks,
			MonthYear: src.MonthYear,
			Day:       src.Day,
			Text:      im.opts.ConvertString(src.Text[:]),
		}
	}
}
