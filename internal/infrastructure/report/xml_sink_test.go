package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/report"
)

func TestXMLSink_GenerateAndLoad(t *testing.T) {
	dir := t.TempDir()
	sink := NewXMLSink(dir, nil)

	date := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	item := report.ActivityReport{
		ActivityName:    "Endurance Camp",
		TeamName:        "Garamvari Ultras",
		ExecutionDate:   date,
		Success:         true,
		RemainingBudget: 8000,
		AffectedPlayers: []string{"Bence Szabo", "Daniel Farkas"},
	}

	if err := sink.Generate(t.Context(), item); err != nil {
		t.Fatalf("generate report: %v", err)
	}

	loaded, err := sink.Load(t.Context(), "Report_20250701_1.xml")
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if loaded.ActivityName != item.ActivityName || loaded.TeamName != item.TeamName {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if !loaded.Success || loaded.RemainingBudget != 8000 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.AffectedPlayers) != 2 || loaded.AffectedPlayers[0] != "Bence Szabo" {
		t.Fatalf("unexpected players: %+v", loaded.AffectedPlayers)
	}
}

func TestXMLSink_NumbersFilesPerDay(t *testing.T) {
	dir := t.TempDir()
	sink := NewXMLSink(dir, nil)

	date := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if err := sink.Generate(t.Context(), report.ActivityReport{
			ActivityName:  "League Fixture",
			TeamName:      "Garamvari Ultras",
			ExecutionDate: date,
		}); err != nil {
			t.Fatalf("generate report: %v", err)
		}
	}

	for _, name := range []string{"Report_20250701_1.xml", "Report_20250701_2.xml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}
