package artifact

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func newStore(t *testing.T, templatePath string) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "out"), "Boyd_Proposal_", templatePath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSaveAndOpen(t *testing.T) {
	s := newStore(t, "templates/Blank.xlsm")

	f := excelize.NewFile()
	defer f.Close()
	art, err := s.Save(f)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(art.Name, "Boyd_Proposal_") || !strings.HasSuffix(art.Name, ".xlsm") {
		t.Errorf("artifact name %q missing prefix or extension", art.Name)
	}
	if _, err := os.Stat(art.Path); err != nil {
		t.Fatalf("saved file not on disk: %v", err)
	}

	rc, err := s.Open(art.Name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	if _, err := io.ReadAll(rc); err != nil {
		t.Fatalf("read artifact: %v", err)
	}
}

func TestSaveNamesNeverCollide(t *testing.T) {
	s := newStore(t, "templates/Blank.xlsm")

	f := excelize.NewFile()
	defer f.Close()
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		art, err := s.Save(f)
		if err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
		if seen[art.Name] {
			t.Fatalf("duplicate artifact name %q", art.Name)
		}
		seen[art.Name] = true
	}
}

func TestValidName(t *testing.T) {
	s := newStore(t, "templates/Blank.xlsm")

	token := strings.Repeat("a0", 16)
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"well formed", "Boyd_Proposal_" + token + ".xlsm", true},
		{"wrong prefix", "Other_" + token + ".xlsm", false},
		{"wrong extension", "Boyd_Proposal_" + token + ".xlsx", false},
		{"short token", "Boyd_Proposal_abc123.xlsm", false},
		{"uppercase hex", "Boyd_Proposal_" + strings.Repeat("A0", 16) + ".xlsm", false},
		{"path traversal", "Boyd_Proposal_../../etc/passwd.xlsm", false},
		{"separator in token", "Boyd_Proposal_" + strings.Repeat("a0", 15) + "/a" + ".xlsm", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ValidName(tc.input); got != tc.want {
				t.Errorf("ValidName(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestOpenRejectsUnknownNames(t *testing.T) {
	s := newStore(t, "templates/Blank.xlsm")

	for _, name := range []string{
		"../../etc/passwd",
		"Boyd_Proposal_zz.xlsm",
		"Boyd_Proposal_" + strings.Repeat("a0", 16) + ".xlsm", // well formed but never saved
	} {
		if _, err := s.Open(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q) err = %v, want fs.ErrNotExist", name, err)
		}
	}
}

func TestContentType(t *testing.T) {
	macro := newStore(t, "templates/Blank.xlsm")
	if got := macro.ContentType(); got != "application/vnd.ms-excel.sheet.macroEnabled.12" {
		t.Errorf("macro content type = %q", got)
	}

	plain := newStore(t, "templates/Blank.xlsx")
	if got := plain.ContentType(); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("plain content type = %q", got)
	}
}
