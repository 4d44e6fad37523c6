package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

const (
	MessageExcellent   = "Attendance is excellent today 👍"
	MessageModerate    = "Attendance is moderate today 🙂"
	MessageHighAbsence = "High absenteeism detected ⚠ Please review attendance."

	trendLabelLayout = "02 Jan"
)

// ComputePercentages expresses counts as a share of totalEmployees, rounded to one decimal
// with ties going to the even digit. A zero or negative headcount yields all zeros.
func ComputePercentages(counts attendance.DailyCounts, totalEmployees int64) attendance.Percentages {
	if totalEmployees <= 0 {
		return attendance.Percentages{}
	}
	return attendance.Percentages{
		Present: percentOf(counts.Present, totalEmployees),
		Absent:  percentOf(counts.Absent, totalEmployees),
		Late:    percentOf(counts.Late, totalEmployees),
	}
}

func percentOf(count, total int64) float64 {
	pct, _ := decimal.NewFromInt(count).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		RoundBank(1).
		Float64()
	return pct
}

// HeuristicMessage picks the status line for presentPct and names the department with
// the most absences when there is one.
func HeuristicMessage(presentPct float64, top *attendance.DepartmentAbsence) string {
	var msg string
	switch {
	case presentPct >= 80:
		msg = MessageExcellent
	case presentPct >= 60:
		msg = MessageModerate
	default:
		msg = MessageHighAbsence
	}

	if top != nil && top.Total > 0 {
		msg += " | Most absences from " + top.DepartmentName + " department."
	}
	return msg
}

// BuildTrend lays rows out over windowDays days ending at endDate, oldest first.
// Days without rows are zero.
func BuildTrend(endDate time.Time, windowDays int, rows []attendance.DailyStatusCount) attendance.TrendResponse {
	if windowDays < 1 {
		windowDays = 1
	}
	end := dateOnly(endDate)
	start := end.AddDate(0, 0, -(windowDays - 1))

	byDay := make(map[string]*attendance.DailyCounts, windowDays)
	for _, row := range rows {
		key := attendance.DayString(row.Date)
		counts, ok := byDay[key]
		if !ok {
			counts = &attendance.DailyCounts{}
			byDay[key] = counts
		}
		counts.Add(row.Status, row.Count)
	}

	trend := attendance.TrendResponse{
		Labels:  make([]string, 0, windowDays),
		Present: make([]int64, 0, windowDays),
		Absent:  make([]int64, 0, windowDays),
		Late:    make([]int64, 0, windowDays),
		From:    attendance.DayString(start),
		To:      attendance.DayString(end),
	}
	for i := 0; i < windowDays; i++ {
		d := start.AddDate(0, 0, i)
		var counts attendance.DailyCounts
		if c, ok := byDay[attendance.DayString(d)]; ok {
			counts = *c
		}
		trend.Labels = append(trend.Labels, d.Format(trendLabelLayout))
		trend.Present = append(trend.Present, counts.Present)
		trend.Absent = append(trend.Absent, counts.Absent)
		trend.Late = append(trend.Late, counts.Late)
	}
	return trend
}

// dateOnly drops the clock, keeping the calendar day as seen in t's location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
