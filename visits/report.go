package visits

import (
	"time"

	"github.com/tealeg/xlsx/v3"
)

const (
	reportSheetNameSummary = "Summary"
	reportSheetNameVisits  = "Visits"

	reportDateUnknown = "unknown"
)

// Report renders an aggregated visit list as an xlsx workbook, for admins who
// hand schedules to the care teams on paper.
type Report struct {
	visits []Visit
}

func NewReport(visits []Visit) Report {
	return Report{visits: visits}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addSummarySheet,
		r.addVisitsSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addSummarySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(reportSheetNameSummary)
	if err != nil {
		return err
	}

	sh.AddRow().AddCell().SetValue("Visit Schedule Report")
	sh.AddRow()

	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Report Generated")
	currentRow.AddCell().SetValue(time.Now().UTC().Format(time.RFC3339))

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Visits")
	currentRow.AddCell().SetValue(len(r.visits))

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Without A Confirmed Date")
	currentRow.AddCell().SetValue(r.countUnknownDates())

	return nil
}

func (r Report) addVisitsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(reportSheetNameVisits)
	if err != nil {
		return err
	}

	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Elder")
	currentRow.AddCell().SetValue("Date")
	currentRow.AddCell().SetValue("Location")
	currentRow.AddCell().SetValue("Guardian")
	currentRow.AddCell().SetValue("Caregiver")

	for _, v := range r.visits {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(v.ElderName)
		currentRow.AddCell().SetValue(formatReportDate(v.Date))
		currentRow.AddCell().SetValue(v.Location)
		currentRow.AddCell().SetValue(v.GuardianName)
		currentRow.AddCell().SetValue(v.CaregiverName)
	}

	return nil
}

func (r Report) countUnknownDates() int {
	count := 0
	for _, v := range r.visits {
		if v.Date.EpochMillis() == EpochMillisUnknown {
			count += 1
		}
	}
	return count
}

func formatReportDate(date FlexTime) string {
	t, ok := date.Time()
	if !ok {
		return reportDateUnknown
	}
	return t.Format("2006-01-02 15:04")
}
