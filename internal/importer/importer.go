// Package importer loads legacy SC6/SV6 containers into the world model. One
// Importer instance handles exactly one file: Load parses the container and
// reports which external objects it needs, Import populates a caller-owned
// world after those objects have been resolved.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/sawyer"
	"parklegacy.dev/internal/world"
)

var (
	ErrInvalidExtension = errors.New("importer: unsupported file extension")
	ErrChecksumMismatch = errors.New("importer: scenario checksum mismatch")
	ErrAlreadyLoaded    = errors.New("importer: Load called twice on one instance")
	ErrNotLoaded        = errors.New("importer: Import requires a successful Load first")
)

// State tracks the per-instance import lifecycle.
type State int

const (
	StateUnopened State = iota
	StateHeaderRead
	StateObjectsKnown
	StatePopulated
	StatePatched
)

// StringConverter turns legacy-encoded text into UTF-8. The zero value of
// Options uses an identity conversion that trims at the first NUL.
type StringConverter func([]byte) string

func defaultStringConverter(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// Options configures one import operation.
type Options struct {
	// AllowIncorrectChecksum skips the scenario checksum trailer check. It
	// is never consulted for saved games, which were not reliably stamped.
	AllowIncorrectChecksum bool

	// Objects receives packed asset blobs embedded in the container.
	Objects s6.PackedObjectSink

	// ConvertString decodes legacy text fields.
	ConvertString StringConverter
}

// Result carries the warning-class diagnostics of one import. None of these
// abort the import.
type Result struct {
	// NewsTruncatedAt is the queue index holding the first unrecognized
	// news item, or -1 when the whole queue was readable.
	NewsTruncatedAt int

	RepairedFreeListLinks int
	RepairedSpatialLinks  int
	DisjointEntities      int

	Warnings []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Importer is the import orchestrator.
type Importer struct {
	opts       Options
	state      State
	isScenario bool
	data       *s6.Data
	result     Result
}

func New(opts Options) *Importer {
	if opts.ConvertString == nil {
		opts.ConvertString = defaultStringConverter
	}
	return &Importer{opts: opts, result: Result{NewsTruncatedAt: -1}}
}

// State reports the orchestrator's current lifecycle position.
func (im *Importer) State() State { return im.state }

// Load opens and decodes the container at path, returning the ordered list
// of external objects that must be resolved before Import. The extension
// selects the container kind; anything but .SC6 or .SV6 fails before any
// byte is read.
func (im *Importer) Load(path string) ([]s6.ObjectEntry, error) {
	if im.state != StateUnopened {
		return nil, ErrAlreadyLoaded
	}
	switch strings.ToUpper(filepath.Ext(path)) {
	case ".SC6":
		im.isScenario = true
	case ".SV6":
		im.isScenario = false
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("importer: %w", err)
	}
	defer f.Close()
	return im.load(f)
}

func (im *Importer) load(rs io.ReadSeeker) ([]s6.ObjectEntry, error) {
	// Saved games never carried a reliable checksum, so only scenarios are
	// validated.
	if im.isScenario && !im.opts.AllowIncorrectChecksum {
		ok, err := sawyer.ValidateChecksum(rs)
		if err != nil {
			return nil, fmt.Errorf("importer: %w", err)
		}
		if !ok {
			return nil, ErrChecksumMismatch
		}
	}
	im.state = StateHeaderRead

	data, err := s6.Decode(rs, im.isScenario, im.opts.Objects)
	if err != nil {
		return nil, err
	}
	im.data = data
	im.state = StateObjectsKnown

	var required []s6.ObjectEntry
	for _, entry := range data.Objects {
		if !entry.IsEmpty() {
			required = append(required, entry)
		}
	}
	return required, nil
}

// Import populates w from the loaded staging set, applies per-scenario
// fixups and structural repairs, and returns the collected diagnostics. The
// caller owns w and must keep it unshared for the duration.
func (im *Importer) Import(w *world.World) (*Result, error) {
	if im.state != StateObjectsKnown {
		return nil, ErrNotLoaded
	}

	d := im.data
	applyStagingQuirks(d)

	w.Reset()
	im.translateScenario(d, w)
	im.translatePark(d, w)
	im.translateClimate(d, w)
	im.translateFinance(d, w)
	translateTiles(d, w)
	im.reconcileEntities(d, w)
	im.translateRides(d, w)
	translateResearch(d, w)
	im.translateNews(d, w)
	im.translatePeepSpawns(d, w)
	im.translateParkEntrances(d, w)
	im.state = StatePopulated

	applyWorldQuirks(d, w)
	im.result.RepairedFreeListLinks = repairFreeListCycles(&w.Entities)
	im.result.RepairedSpatialLinks = repairSpatialCycles(&w.Entities)
	im.result.DisjointEntities = countDisjointEntities(&w.Entities)
	if im.result.RepairedFreeListLinks > 0 {
		im.result.warnf("repaired %d free-list links", im.result.RepairedFreeListLinks)
	}
	if im.result.RepairedSpatialLinks > 0 {
		im.result.warnf("repaired %d spatial index links", im.result.RepairedSpatialLinks)
	}
	if im.result.DisjointEntities > 0 {
		im.result.warnf("found %d disjoint entities", im.result.DisjointEntities)
	}
	im.state = StatePatched

	res := im.result
	return &res, nil
}
