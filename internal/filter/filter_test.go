package filter

import (
	"testing"
	"time"

	"github.com/javiermolinar/rota/internal/grid"
	"github.com/javiermolinar/rota/internal/shift"
)

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

func testEntities() []shift.Entity {
	return []shift.Entity{
		{ID: 1, Name: "Abu, Blessing (Blessing)", Category: shift.CategorySupportWorker},
		{ID: 3, Name: "Agyemang, Belinda (Belinda)", Category: shift.CategoryTeamLeader},
		{ID: 4, Name: "Ahmed, Jaber (Jaber)", Category: shift.CategoryManager},
		{ID: 6, Name: "Williams, Sarah", Category: shift.CategorySeniorSupportWorker},
		{ID: 10, Name: "26 Waverley Lodge", Category: shift.CategoryService},
		{ID: 11, Name: "Chingford", Category: shift.CategoryService},
		{ID: 20, Name: "John Smith", Category: shift.CategoryClient},
		{ID: 21, Name: "Mary Johnson", Category: shift.CategoryClient},
	}
}

func testShifts() []*shift.Shift {
	other := testDay.AddDate(0, 0, 1)
	return []*shift.Shift{
		{ID: 1, ServiceClient: "26 Waverley Lodge", Type: shift.TypeNightShift, Start: "22:00", End: "06:00", Date: testDay, Coverage: shift.CoverageUncovered},
		{ID: 2, ServiceClient: "Chingford", Type: shift.TypeTeamLeader, Start: "12:00", End: "20:00", Date: testDay, Coverage: shift.CoverageUncovered},
		{ID: 3, ServiceClient: "John Smith", Type: shift.TypeSupportWorker, Start: "09:00", End: "15:00", Date: testDay, Coverage: shift.CoverageCovered},
		{ID: 4, ServiceClient: "Mary Johnson", Type: shift.TypeSupportWorker, Start: "08:00", End: "16:00", Date: other, Coverage: shift.CoverageCovered},
	}
}

func names(entities []shift.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Name
	}
	return out
}

func shiftIDs(shifts []*shift.Shift) []int64 {
	out := make([]int64, len(shifts))
	for i, s := range shifts {
		out[i] = s.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEntitiesFor(t *testing.T) {
	tests := []struct {
		by   shift.ViewBy
		want []string
	}{
		{shift.ViewWorker, []string{"Abu, Blessing (Blessing)", "Agyemang, Belinda (Belinda)", "Ahmed, Jaber (Jaber)", "Williams, Sarah"}},
		{shift.ViewServiceClient, []string{"26 Waverley Lodge", "Chingford"}},
		{shift.ViewClient, []string{"John Smith", "Mary Johnson"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			got := names(EntitiesFor(tt.by, testEntities()))
			if !equalStrings(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntities_NameFilter(t *testing.T) {
	sel := NewSelection(shift.ViewServiceClient, testDay).WithName("Chingford")
	got := names(Entities(sel, testEntities()))
	if !equalStrings(got, []string{"Chingford"}) {
		t.Errorf("got %v", got)
	}

	sel = sel.WithName("John Smith")
	if got := Entities(sel, testEntities()); len(got) != 0 {
		t.Errorf("name outside the view group should match nothing, got %v", names(got))
	}
}

func TestWithBy_ResetsName(t *testing.T) {
	sel := NewSelection(shift.ViewServiceClient, testDay).WithName("Chingford").WithNameSearch("ch")
	next := sel.WithBy(shift.ViewWorker)
	if next.Name != All {
		t.Errorf("Name = %q, want All", next.Name)
	}
	if sel.Name != "Chingford" {
		t.Error("WithBy mutated the original selection")
	}
	if next.NameSearch != "ch" {
		t.Errorf("NameSearch = %q", next.NameSearch)
	}
}

func TestSearchNames(t *testing.T) {
	tests := []struct {
		name string
		by   shift.ViewBy
		term string
		want []string
	}{
		{"empty term", shift.ViewClient, "", []string{"John Smith", "Mary Johnson"}},
		{"case insensitive", shift.ViewClient, "JOHN", []string{"John Smith", "Mary Johnson"}},
		{"substring", shift.ViewWorker, "bel", []string{"Agyemang, Belinda (Belinda)"}},
		{"other group ignored", shift.ViewServiceClient, "john", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(SearchNames(tt.by, tt.term, testEntities()))
			if !equalStrings(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		status string
		want   []int64
	}{
		{"all", All, All, []int64{1, 2, 3, 4}},
		{"covered", All, StatusCovered, []int64{3, 4}},
		{"uncovered", All, StatusUncovered, []int64{1, 2}},
		{"type", shift.TypeSupportWorker, All, []int64{3, 4}},
		{"type and status", shift.TypeNightShift, StatusCovered, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shiftIDs(Shifts(testShifts(), tt.typ, tt.status))
			if !equalIDs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShifts_Idempotent(t *testing.T) {
	shifts := testShifts()
	once := Shifts(shifts, shift.TypeSupportWorker, StatusCovered)
	twice := Shifts(once, shift.TypeSupportWorker, StatusCovered)
	if !equalIDs(shiftIDs(once), shiftIDs(twice)) {
		t.Errorf("filter not idempotent: %v vs %v", shiftIDs(once), shiftIDs(twice))
	}

	all := Shifts(shifts, All, All)
	for i := range shifts {
		if all[i] != shifts[i] {
			t.Errorf("All changed element %d", i)
		}
	}
}

func TestEntities_Idempotent(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
	}{
		{"workers", NewSelection(shift.ViewWorker, testDay)},
		{"one service", NewSelection(shift.ViewServiceClient, testDay).WithName("Chingford")},
		{"clients", NewSelection(shift.ViewClient, testDay)},
		{"unknown name", NewSelection(shift.ViewClient, testDay).WithName("Nobody")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Entities(tt.sel, testEntities())
			twice := Entities(tt.sel, once)
			if !equalStrings(names(once), names(twice)) {
				t.Errorf("not idempotent: %v vs %v", names(once), names(twice))
			}
		})
	}
}

func TestEntities_AllIsIdentity(t *testing.T) {
	for _, by := range shift.Views() {
		t.Run(string(by), func(t *testing.T) {
			group := EntitiesFor(by, testEntities())
			got := Entities(NewSelection(by, testDay), group)
			if !equalStrings(names(got), names(group)) {
				t.Errorf("got %v, want %v", names(got), names(group))
			}
		})
	}
}

func TestSearchNames_Idempotent(t *testing.T) {
	tests := []struct {
		by   shift.ViewBy
		term string
	}{
		{shift.ViewWorker, "bel"},
		{shift.ViewClient, "JOHN"},
		{shift.ViewServiceClient, ""},
		{shift.ViewWorker, "zzz"},
	}
	for _, tt := range tests {
		t.Run(string(tt.by)+"/"+tt.term, func(t *testing.T) {
			once := SearchNames(tt.by, tt.term, testEntities())
			twice := SearchNames(tt.by, tt.term, once)
			if !equalStrings(names(once), names(twice)) {
				t.Errorf("not idempotent: %v vs %v", names(once), names(twice))
			}
		})
	}
}

func TestApply_FiltersDate(t *testing.T) {
	sel := NewSelection(shift.ViewServiceClient, testDay.Add(15*time.Hour))
	got := shiftIDs(Apply(sel, testShifts()))
	if !equalIDs(got, []int64{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestWorkersForRole(t *testing.T) {
	got := names(WorkersForRole("", testEntities()))
	if len(got) != 4 {
		t.Errorf("empty role should return all workers, got %v", got)
	}
	got = names(WorkersForRole(string(shift.CategoryTeamLeader), testEntities()))
	if !equalStrings(got, []string{"Agyemang, Belinda (Belinda)"}) {
		t.Errorf("got %v", got)
	}
}

func TestServiceClientOptions(t *testing.T) {
	got := names(ServiceClientOptions(testEntities()))
	want := []string{"26 Waverley Lodge", "Chingford", "John Smith", "Mary Johnson"}
	if !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestByType(t *testing.T) {
	if got := shiftIDs(ByType(testShifts(), shift.TypeNightShift)); !equalIDs(got, []int64{1}) {
		t.Errorf("got %v", got)
	}
}

func TestInTimeRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int64
	}{
		{"morning", 8, 10, []int64{1, 3, 4}},
		{"evening", 20, 23, []int64{1}},
		{"midday", 11, 13, []int64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shiftIDs(InTimeRange(testShifts(), tt.start, tt.end))
			if !equalIDs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActiveCount(t *testing.T) {
	sel := NewSelection(shift.ViewWorker, testDay)
	if got := ActiveCount(sel); got != 0 {
		t.Errorf("fresh selection count = %d", got)
	}
	sel = sel.WithType(shift.TypeTraining).WithStatus(StatusCovered).WithName("Williams, Sarah")
	if got := ActiveCount(sel); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	sel = sel.WithDensity(grid.DensityCompact).WithDate(testDay.AddDate(0, 0, 3))
	if got := ActiveCount(sel); got != 3 {
		t.Errorf("density and date should not count, got %d", got)
	}
}
