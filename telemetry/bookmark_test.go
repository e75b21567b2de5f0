package telemetry

import (
	"testing"

	"github.com/pthm-cable/rps/config"
)

func defaultBookmarks() config.BookmarksConfig {
	return config.Default().Bookmarks
}

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func balancedWindow(tick int32) WindowStats {
	return WindowStats{
		WindowEndTick: tick,
		Rock:          50, Paper: 50, Scissors: 50,
		RockMean: 50, RockStd: 1,
		PaperMean: 50, PaperStd: 1,
		ScissorsMean: 50, ScissorsStd: 1,
	}
}

func TestBookmarkDetector_Extinction(t *testing.T) {
	bd := NewBookmarkDetector(10, defaultBookmarks())

	if got := bd.Check(balancedWindow(600)); hasBookmark(got, BookmarkExtinction) {
		t.Fatal("first window cannot report an extinction")
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1200, Rock: 0, Paper: 80, Scissors: 70})
	if !hasBookmark(bookmarks, BookmarkExtinction) {
		t.Fatal("expected extinction bookmark")
	}

	// Already extinct: no repeat.
	bookmarks = bd.Check(WindowStats{WindowEndTick: 1800, Rock: 0, Paper: 90, Scissors: 60})
	if hasBookmark(bookmarks, BookmarkExtinction) {
		t.Error("extinction should only fire on the window the kind died out")
	}
}

func TestBookmarkDetector_Takeover(t *testing.T) {
	bd := NewBookmarkDetector(10, defaultBookmarks())

	bd.Check(WindowStats{WindowEndTick: 600, Rock: 10, Paper: 10, Scissors: 10})

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1200, Rock: 2, Paper: 25, Scissors: 3})
	if !hasBookmark(bookmarks, BookmarkTakeover) {
		t.Fatal("expected takeover bookmark at 83% share")
	}

	bookmarks = bd.Check(WindowStats{WindowEndTick: 1800, Rock: 1, Paper: 27, Scissors: 2})
	if hasBookmark(bookmarks, BookmarkTakeover) {
		t.Error("takeover should not repeat while the kind stays dominant")
	}

	// Dropping below and crossing again fires again.
	bd.Check(WindowStats{WindowEndTick: 2400, Rock: 10, Paper: 15, Scissors: 5})
	bookmarks = bd.Check(WindowStats{WindowEndTick: 3000, Rock: 0, Paper: 29, Scissors: 1})
	if !hasBookmark(bookmarks, BookmarkTakeover) {
		t.Error("expected takeover after re-crossing the threshold")
	}
}

func TestBookmarkDetector_Stalemate(t *testing.T) {
	cfg := defaultBookmarks()
	bd := NewBookmarkDetector(10, cfg)

	fired := 0
	for i := 1; i <= 3*cfg.Stalemate.StableWindows; i++ {
		bookmarks := bd.Check(balancedWindow(int32(i * 600)))
		if hasBookmark(bookmarks, BookmarkStalemate) {
			fired++
			if i != cfg.Stalemate.StableWindows {
				t.Errorf("stalemate fired at window %d, want %d", i, cfg.Stalemate.StableWindows)
			}
		}
	}
	if fired != 1 {
		t.Errorf("stalemate fired %d times, want 1", fired)
	}
}

func TestBookmarkDetector_StalemateNeedsLowVariance(t *testing.T) {
	cfg := defaultBookmarks()
	bd := NewBookmarkDetector(10, cfg)

	for i := 1; i <= 2*cfg.Stalemate.StableWindows; i++ {
		w := balancedWindow(int32(i * 600))
		w.RockStd = 20 // cv 0.4
		if hasBookmark(bd.Check(w), BookmarkStalemate) {
			t.Fatalf("stalemate fired at window %d despite swinging counts", i)
		}
	}
}
