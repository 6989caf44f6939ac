package dryrun

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"wagesync/internal/ports"
)

func TestStorePrintsIntendedWrites(t *testing.T) {
	var out bytes.Buffer
	store := NewStore(&out)
	ctx := context.Background()

	if _, err := store.FindGeography(ctx, "ca", ""); !errors.Is(err, ports.ErrGeographyNotFound) {
		t.Fatalf("FindGeography() error = %v, want ErrGeographyNotFound", err)
	}
	geo, err := store.CreateGeography(ctx, ports.GeographyCreate{State: "ca", StateName: "California", Slug: "ca"})
	if err != nil {
		t.Fatalf("CreateGeography() error = %v", err)
	}
	again, err := store.FindGeography(ctx, "CA", "")
	if err != nil || again.ID != geo.ID {
		t.Fatalf("FindGeography() = %+v, %v", again, err)
	}

	median := 132660.0
	err = store.WithTx(ctx, func(txCtx context.Context) error {
		_, err := store.SaveWageStatistic(txCtx, ports.WageStatisticSave{
			Key:     ports.WageStatisticKey{OccupationKeyword: "registered-nurse", GeographyID: &geo.ID, Year: 2024},
			Figures: ports.WageFigures{AnnualMedian: &median},
			Source:  "oes_spreadsheet",
		})
		return err
	})
	if err != nil {
		t.Fatalf("SaveWageStatistic() error = %v", err)
	}
	if err := store.UpsertIndustryEmployment(ctx, ports.IndustryEmploymentUpsert{OccupationKeyword: "registered-nurse", IndustryCode: "622000", Year: 2024}); err != nil {
		t.Fatalf("UpsertIndustryEmployment() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[dry-run] ") {
			t.Fatalf("line without prefix: %q", line)
		}
	}
	if !strings.Contains(lines[1], "geography=ca") || !strings.Contains(lines[1], "annual_median=132660") || !strings.Contains(lines[1], "employment=-") {
		t.Fatalf("wage line = %q", lines[1])
	}

	if _, found, _ := store.FindWageStatistic(ctx, ports.WageStatisticKey{OccupationKeyword: "registered-nurse", Year: 2024}); found {
		t.Fatalf("dry-run store must not keep wage rows")
	}
}
