// Package report persists activity reports as XML files, one file per
// resolved activity.
package report

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/report"
)

type xmlReport struct {
	XMLName         xml.Name  `xml:"ActivityReport"`
	ActivityName    string    `xml:"ActivityName"`
	TeamName        string    `xml:"TeamName"`
	ExecutionDate   time.Time `xml:"ExecutionDate"`
	Success         bool      `xml:"Success"`
	RemainingBudget int64     `xml:"RemainingBudget"`
	AffectedPlayers []string  `xml:"AffectedPlayers>Player"`
}

// XMLSink writes reports into a directory as Report_YYYYMMDD_N.xml,
// numbering files per execution date. The directory is created on
// first write.
type XMLSink struct {
	dir    string
	logger *slog.Logger
}

func NewXMLSink(dir string, logger *slog.Logger) *XMLSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &XMLSink{dir: dir, logger: logger}
}

func (s *XMLSink) Generate(ctx context.Context, item report.ActivityReport) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	name, err := s.nextName(item.ExecutionDate)
	if err != nil {
		return err
	}

	payload, err := xml.MarshalIndent(xmlReport{
		ActivityName:    item.ActivityName,
		TeamName:        item.TeamName,
		ExecutionDate:   item.ExecutionDate,
		Success:         item.Success,
		RemainingBudget: item.RemainingBudget,
		AffectedPlayers: item.AffectedPlayers,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, append([]byte(xml.Header), payload...), 0o644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	s.logger.InfoContext(ctx, "activity report written", "file", name)
	return nil
}

// Load reads back a previously generated report by file name.
func (s *XMLSink) Load(_ context.Context, name string) (report.ActivityReport, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return report.ActivityReport{}, fmt.Errorf("read report file: %w", err)
	}

	var decoded xmlReport
	if err := xml.Unmarshal(raw, &decoded); err != nil {
		return report.ActivityReport{}, fmt.Errorf("unmarshal report file: %w", err)
	}

	return report.ActivityReport{
		ActivityName:    decoded.ActivityName,
		TeamName:        decoded.TeamName,
		ExecutionDate:   decoded.ExecutionDate,
		Success:         decoded.Success,
		RemainingBudget: decoded.RemainingBudget,
		AffectedPlayers: decoded.AffectedPlayers,
	}, nil
}

// nextName finds the first free sequence number for the date.
func (s *XMLSink) nextName(date time.Time) (string, error) {
	day := date.Format("20060102")
	for n := 1; ; n++ {
		name := fmt.Sprintf("Report_%s_%d.xml", day, n)
		_, err := os.Stat(filepath.Join(s.dir, name))
		if os.IsNotExist(err) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe report file: %w", err)
		}
	}
}
