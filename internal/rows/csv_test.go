package rows

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadBasic(t *testing.T) {
	input := "id,name,parent,sort_order\ndev,Development,,1\nweb,Web,dev,2\n"
	rs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rs))
	}
	if rs[0].Get("id") != "dev" || rs[0].Get("name") != "Development" {
		t.Errorf("unexpected first row: %v", rs[0])
	}
	if rs[1].Get("parent") != "dev" {
		t.Errorf("expected parent dev, got %q", rs[1].Get("parent"))
	}
}

func TestReadBOMHeader(t *testing.T) {
	input := "\uFEFFid,name\na,A\n"
	rs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rs[0].Get("id") != "a" {
		t.Errorf("BOM not stripped from header, row: %v", rs[0])
	}
}

func TestReadRaggedRecords(t *testing.T) {
	input := "id,name,extra\na,A\nb,B,x,ignored\n"
	rs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rs[0].Get("extra") != "" {
		t.Errorf("missing trailing field should read empty, got %q", rs[0].Get("extra"))
	}
	if rs[1].Get("extra") != "x" {
		t.Errorf("expected x, got %q", rs[1].Get("extra"))
	}
}

func TestReadSkipsEmptyRecords(t *testing.T) {
	input := "id,name\na,A\n,\n"
	rs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rs) != 1 {
		t.Errorf("expected empty record skipped, got %d rows", len(rs))
	}
}

func TestReadEmptyInput(t *testing.T) {
	rs, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rs != nil {
		t.Errorf("expected nil rows, got %v", rs)
	}
}

func TestRowInt(t *testing.T) {
	r := Row{"n": "7", "bad": "abc", "blank": ""}
	if got := r.Int("n", 9999); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
	if got := r.Int("bad", 9999); got != 9999 {
		t.Errorf("malformed number: got %d, want default", got)
	}
	if got := r.Int("missing", 9999); got != 9999 {
		t.Errorf("missing column: got %d, want default", got)
	}
	if got := r.Int("blank", 9999); got != 9999 {
		t.Errorf("blank column: got %d, want default", got)
	}
}

func TestRowFirst(t *testing.T) {
	r := Row{"parent": "", "parent_id": "p1"}
	if got := r.First("parent", "parent_id"); got != "p1" {
		t.Errorf("got %q, want p1", got)
	}
}

func TestReadGlob(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("sites.csv", "id,title\ns1,A\n")
	write("sites_extra.csv", "id,title\ns2,B\n")
	write("other.txt", "not csv")

	rs, err := ReadGlob(dir, []string{"sites*.csv"})
	if err != nil {
		t.Fatalf("ReadGlob: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("expected 2 rows across files, got %d", len(rs))
	}
}

func TestReadGlobMissingDir(t *testing.T) {
	rs, err := ReadGlob(filepath.Join(t.TempDir(), "nope"), []string{"*.csv"})
	if err != nil {
		t.Fatalf("missing dir should yield no matches, got error: %v", err)
	}
	if len(rs) != 0 {
		t.Errorf("expected no rows, got %d", len(rs))
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
