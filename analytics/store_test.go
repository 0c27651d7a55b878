package analytics

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordVisitAndTotals(t *testing.T) {
	s := newTestStore(t)

	for _, v := range []struct{ path, visitor string }{
		{"/", "v1"},
		{"/", "v2"},
		{"/blog/hello", "v1"},
	} {
		if err := s.RecordVisit(v.path, v.visitor); err != nil {
			t.Fatal(err)
		}
	}

	totals, err := s.Totals()
	if err != nil {
		t.Fatal(err)
	}
	if totals.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", totals.TotalViews)
	}
	if totals.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", totals.UniqueVisitors)
	}
	if len(totals.TopPages) != 2 || totals.TopPages[0].Path != "/" || totals.TopPages[0].Views != 2 {
		t.Errorf("TopPages = %+v", totals.TopPages)
	}
}

func TestTotalsEmpty(t *testing.T) {
	s := newTestStore(t)
	totals, err := s.Totals()
	if err != nil {
		t.Fatal(err)
	}
	if totals.TotalViews != 0 || totals.UniqueVisitors != 0 || len(totals.TopPages) != 0 {
		t.Errorf("Totals = %+v, want zeroes", totals)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetSetting("hash_salt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("unset setting = %q, want empty", got)
	}

	if err := s.SetSetting("hash_salt", "abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting("hash_salt", "def"); err != nil {
		t.Fatal(err)
	}
	got, err = s.GetSetting("hash_salt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "def" {
		t.Errorf("setting = %q, want def", got)
	}
}

func TestIsBot(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (compatible; Googlebot/2.1)", true},
		{"curl/8.0 spider", true},
		{"Mozilla/5.0 (X11; Linux x86_64) Firefox/126.0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBot(tt.ua); got != tt.want {
			t.Errorf("IsBot(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}
