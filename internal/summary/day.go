// Package summary provides shared day summary utilities.
package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/javiermolinar/rota/internal/filter"
	"github.com/javiermolinar/rota/internal/shift"
)

// TypeCount is the number of shifts carrying a type tag.
type TypeCount struct {
	Type  string
	Count int
}

// DaySummary holds aggregated coverage figures for one day.
type DaySummary struct {
	Date           time.Time
	Shifts         []*shift.Shift
	Total          int
	Covered        int
	Uncovered      int
	Night          int
	Urgent         []*shift.Shift
	CoveredHours   int
	UncoveredHours int
	ByType         []TypeCount
	ActiveFilters  int
}

// CoveragePercent returns the share of covered shifts, 0 when there are none.
func (s *DaySummary) CoveragePercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Covered) / float64(s.Total) * 100
}

// SummarizeDay aggregates the shifts visible under the selection.
func SummarizeDay(sel filter.Selection, shifts []*shift.Shift) *DaySummary {
	visible := filter.Apply(sel, shifts)

	sum := &DaySummary{
		Date:          sel.Date,
		Shifts:        visible,
		Total:         len(visible),
		Night:         len(filter.ByType(visible, shift.TypeNightShift)),
		ActiveFilters: filter.ActiveCount(sel),
	}

	counts := make(map[string]int)
	for _, s := range visible {
		if s.IsCovered() {
			sum.Covered++
			sum.CoveredHours += s.DurationHours()
		} else {
			sum.Uncovered++
			sum.UncoveredHours += s.DurationHours()
		}
		if s.IsUrgent() {
			sum.Urgent = append(sum.Urgent, s)
		}
		counts[s.Type]++
	}

	for typ, n := range counts {
		sum.ByType = append(sum.ByType, TypeCount{Type: typ, Count: n})
	}
	sort.Slice(sum.ByType, func(i, j int) bool {
		if sum.ByType[i].Count != sum.ByType[j].Count {
			return sum.ByType[i].Count > sum.ByType[j].Count
		}
		return sum.ByType[i].Type < sum.ByType[j].Type
	})

	return sum
}

// BuildDaySummary loads shifts from the repository and summarizes them.
func BuildDaySummary(ctx context.Context, repo shift.Repository, sel filter.Selection) (*DaySummary, error) {
	if sel.Date.IsZero() {
		sel.Date = time.Now()
	}
	shifts, err := repo.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching shifts: %w", err)
	}
	return SummarizeDay(sel, shifts), nil
}
