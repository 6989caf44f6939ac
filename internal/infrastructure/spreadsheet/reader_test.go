package spreadsheet

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"wagesync/internal/domain/oes"
)

func writeWorkbook(t *testing.T, sheets map[string][][]any, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName() error = %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet() error = %v", err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName() error = %v", err)
			}
			values := row
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("SetSheetRow() error = %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "oes.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []oes.Row {
	t.Helper()

	var rows []oes.Row
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		rows = append(rows, row)
	}
}

func TestOpenWorkbookPicksMarkedSheet(t *testing.T) {
	header := []any{"area", "area_type", "prim_state", "naics", "i_group", "occ_code", "o_group", "tot_emp", "h_mean", "a_median"}
	path := writeWorkbook(t, map[string][][]any{
		"Field Descriptions": {
			{"Field", "Description"},
			{"area", "Area code"},
		},
		"All May 2024 data": {
			header,
			{"99", "1", "US", "000000", "cross-industry", "29-1141", "detailed", "3,175,390", "45.42", "86070"},
			{"06", "2", "CA", "000000", "cross-industry", "29-1141", "detailed", "*"},
		},
	}, []string{"Field Descriptions", "All May 2024 data"})

	r, err := Open(path, "may")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if r.Sheet() != "All May 2024 data" {
		t.Fatalf("Sheet() = %q", r.Sheet())
	}

	rows := readAll(t, r)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].OccCode != "29-1141" || rows[0].TotEmp != "3,175,390" || rows[0].AMedian != "86070" {
		t.Fatalf("first row = %+v", rows[0])
	}
	if rows[1].PrimState != "CA" || rows[1].TotEmp != "*" || rows[1].HMean != "" || rows[1].AMedian != "" {
		t.Fatalf("short row was not padded: %+v", rows[1])
	}
	if !oes.IsWageRow(rows[0]) {
		t.Fatalf("IsWageRow(first row) = false")
	}
}

func TestOpenWorkbookFallsBackToFirstSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"national_M2023_dl": {
			{"AREA", "OCC_CODE"},
			{"99", "47-2111"},
		},
	}, []string{"national_M2023_dl"})

	r, err := Open(path, "may")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	rows := readAll(t, r)
	if r.Sheet() != "national_M2023_dl" || len(rows) != 1 || rows[0].OccCode != "47-2111" {
		t.Fatalf("sheet = %q rows = %+v", r.Sheet(), rows)
	}
}

func TestOpenCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oes.csv")
	content := "\ufeffAREA,NAICS,NAICS_TITLE,OCC_CODE,O_GROUP,TOT_EMP,PCT_TOTAL\n" +
		"99,622000,Hospitals,29-1141,detailed,\"1,800,000\",56.7\n" +
		"99,621000,Ambulatory Health Care Services,29-1141\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r, err := Open(path, "")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	rows := readAll(t, r)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Area != "99" || rows[0].NAICSTitle != "Hospitals" || rows[0].TotEmp != "1,800,000" {
		t.Fatalf("first row = %+v", rows[0])
	}
	if rows[1].OccGroup != "" || rows[1].PctTotal != "" {
		t.Fatalf("second row = %+v", rows[1])
	}
}

func TestOpenRejectsUnknownExtension(t *testing.T) {
	if _, err := Open("wages.json", "may"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Open() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestOpenEmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Open(path, ""); err == nil {
		t.Fatalf("Open(empty) expected error")
	}
}
