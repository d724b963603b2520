package cache

import (
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutGetRefs(t *testing.T) {
	c := openTestCache(t)

	refs := []string{"./a", "pkg/b", "fmt"}
	if err := c.PutRefs("/proj/main.go", 1000, 64, refs); err != nil {
		t.Fatal(err)
	}

	got, ok, err := c.GetRefs("/proj/main.go", 1000, 64)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 3 || got[0] != "./a" || got[2] != "fmt" {
		t.Errorf("refs = %v", got)
	}
}

func TestStaleStampMisses(t *testing.T) {
	c := openTestCache(t)

	if err := c.PutRefs("/proj/main.go", 1000, 64, []string{"x"}); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := c.GetRefs("/proj/main.go", 2000, 64); ok {
		t.Error("changed mtime must miss")
	}
	if _, ok, _ := c.GetRefs("/proj/main.go", 1000, 65); ok {
		t.Error("changed size must miss")
	}
	if _, ok, _ := c.GetRefs("/proj/other.go", 1000, 64); ok {
		t.Error("unknown path must miss")
	}
}

func TestPutRefsReplaces(t *testing.T) {
	c := openTestCache(t)

	if err := c.PutRefs("/p/a.go", 1, 1, []string{"old"}); err != nil {
		t.Fatal(err)
	}
	if err := c.PutRefs("/p/a.go", 2, 2, []string{"new"}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := c.GetRefs("/p/a.go", 2, 2)
	if err != nil || !ok || len(got) != 1 || got[0] != "new" {
		t.Errorf("got %v ok=%v err=%v", got, ok, err)
	}

	stats, err := c.GetStats()
	if err != nil || stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}
}

func TestEmptyRefsRoundTrip(t *testing.T) {
	c := openTestCache(t)

	if err := c.PutRefs("/p/empty.go", 1, 1, nil); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.GetRefs("/p/empty.go", 1, 1)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 0 {
		t.Errorf("refs = %v, want empty", got)
	}
}

func TestClearAndPrune(t *testing.T) {
	c := openTestCache(t)

	c.PutRefs("/p/a.go", 1, 1, []string{"x"})
	c.PutRefs("/p/b.go", 1, 1, []string{"y"})
	c.PutRefs("/p/c.go", 1, 1, []string{"z"})

	pruned, err := c.PruneStale(map[string]bool{"/p/a.go": true})
	if err != nil {
		t.Fatal(err)
	}
	if pruned != 2 {
		t.Errorf("pruned = %d, want 2", pruned)
	}

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	stats, _ := c.GetStats()
	if stats.Entries != 0 {
		t.Errorf("entries after clear = %d", stats.Entries)
	}
}
