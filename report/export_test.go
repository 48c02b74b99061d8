package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Opening workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("Reading sheet: %v", err)
	}
	return rows
}

func TestExportRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	rows := []Row{
		{UserId: "00u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			Origin: "Imported (bob)", ConfigurationStatus: "Imported (bob)"},
		{UserId: "00u2", FirstName: "Ben", Origin: "Manual (OKTA)", ConfigurationStatus: "Manual (OKTA)"},
	}
	if err := exportRows(rows, path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := readSheet(t, path)
	if len(got) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(got))
	}
	header := []string{"User ID", "First Name", "Last Name", "Email", "Origin", "Okta Configuration Status"}
	for i, col := range header {
		if got[0][i] != col {
			t.Errorf("Header %d: expected %q, got %q", i, col, got[0][i])
		}
	}
	if got[1][0] != "00u1" || got[1][4] != "Imported (bob)" {
		t.Errorf("Unexpected first data row: %v", got[1])
	}
	if got[2][0] != "00u2" || got[2][5] != "Manual (OKTA)" {
		t.Errorf("Unexpected second data row: %v", got[2])
	}
}

func TestExportOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	first := []Row{{UserId: "00u1"}, {UserId: "00u2"}}
	second := []Row{{UserId: "00u3"}}

	if err := exportRows(first, path); err != nil {
		t.Fatalf("First export: %v", err)
	}
	if err := exportRows(second, path); err != nil {
		t.Fatalf("Second export: %v", err)
	}

	got := readSheet(t, path)
	if len(got) != 2 {
		t.Fatalf("Expected header + 1 row after overwrite, got %d", len(got))
	}
	if got[1][0] != "00u3" {
		t.Errorf("Expected 00u3 after overwrite, got %q", got[1][0])
	}
}
