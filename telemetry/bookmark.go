package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction BookmarkType = "extinction"
	BookmarkTakeover   BookmarkType = "takeover"
	BookmarkStalemate  BookmarkType = "stalemate"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int32        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects turning points in the three-way struggle.
type BookmarkDetector struct {
	cfg config.BookmarksConfig

	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	dominant           [components.NumKinds]bool // kinds currently above the dominance share
	stableWindowsCount int                       // consecutive balanced windows
}

// NewBookmarkDetector creates a detector with the given history size and
// thresholds.
func NewBookmarkDetector(historySize int, cfg config.BookmarksConfig) *BookmarkDetector {
	if historySize < 2 {
		historySize = 2
	}
	if cfg.Stalemate.StableWindows < 1 {
		cfg.Stalemate.StableWindows = 1
	}
	return &BookmarkDetector{
		cfg:         cfg,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if prev, ok := bd.last(); ok {
		bookmarks = append(bookmarks, bd.checkExtinction(prev, stats)...)
	}
	if b := bd.checkTakeover(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStalemate(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// last returns the most recently recorded window.
func (bd *BookmarkDetector) last() (WindowStats, bool) {
	if !bd.historyFull && bd.historyIdx == 0 {
		return WindowStats{}, false
	}
	i := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	return bd.history[i], true
}

func (bd *BookmarkDetector) checkExtinction(prev, stats WindowStats) []Bookmark {
	var out []Bookmark
	before, now := prev.Counts(), stats.Counts()
	for _, k := range components.Kinds {
		if before[k] > 0 && now[k] == 0 {
			out = append(out, Bookmark{
				Type:        BookmarkExtinction,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("%s died out (%d last window), converted by %s", k, before[k], k.Threat()),
			})
		}
	}
	return out
}

func (bd *BookmarkDetector) checkTakeover(stats WindowStats) *Bookmark {
	total := stats.Total()
	if total == 0 {
		return nil
	}

	var fired *Bookmark
	counts := stats.Counts()
	for _, k := range components.Kinds {
		share := float64(counts[k]) / float64(total)
		above := share >= bd.cfg.Dominance.Share
		if above && !bd.dominant[k] && fired == nil {
			fired = &Bookmark{
				Type:        BookmarkTakeover,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("%s holds %.0f%% of the field (%d of %d)", k, share*100, counts[k], total),
			}
		}
		bd.dominant[k] = above
	}
	return fired
}

func (bd *BookmarkDetector) checkStalemate(stats WindowStats) *Bookmark {
	total := stats.Total()
	if total == 0 {
		bd.stableWindowsCount = 0
		return nil
	}

	// Every kind must hold a real share and stay flat across the window.
	balanced := true
	counts := stats.Counts()
	for _, k := range components.Kinds {
		if float64(counts[k])/float64(total) < bd.cfg.Stalemate.MinShare {
			balanced = false
			break
		}
		mean := stats.MeanOf(k)
		if mean <= 0 || stats.StdOf(k)/mean >= bd.cfg.Stalemate.CVThreshold {
			balanced = false
			break
		}
	}

	if balanced {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == bd.cfg.Stalemate.StableWindows { // trigger once per streak
		return &Bookmark{
			Type:        BookmarkStalemate,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Balanced for %d windows: %d rock, %d paper, %d scissors", bd.stableWindowsCount, stats.Rock, stats.Paper, stats.Scissors),
		}
	}
	return nil
}
