package schedule

import (
	"context"
	"sync"

	"github.com/hospital/gateway/pkg/listview"
)

// sortKeys is the closed set of schedule table sort columns.
var sortKeys = map[string]listview.Compare[Schedule]{
	"staffId":    listview.ByInt(func(s Schedule) int { return s.StaffID }),
	"startTime":  listview.ByString(func(s Schedule) string { return s.StartTime }),
	"endTime":    listview.ByString(func(s Schedule) string { return s.EndTime }),
	"shiftType":  listview.ByString(func(s Schedule) string { return string(s.ShiftType) }),
	"department": listview.ByString(func(s Schedule) string { return s.Department }),
}

// View is one renderable page of the schedule table.
type View struct {
	Items      []Schedule
	Page       int
	TotalPages int
	Total      int
}

// Lister drives the schedule table. Endpoint precedence: a staff
// member plus a time range is the most specific, then the range alone,
// then the staff member alone, then shift type, then department, then
// active-only, then the full collection.
type Lister struct {
	fetcher Fetcher
	gen     listview.Generation

	mu      sync.Mutex
	filters Filters
	names   NameIndex
	sortKey string
	sortDir listview.Direction
	items   []Schedule
	page    int
}

func NewLister(fetcher Fetcher) *Lister {
	return &Lister{
		fetcher: fetcher,
		sortKey: "startTime",
		sortDir: listview.Asc,
		page:    1,
	}
}

// SetNames installs the staff id → name index used to label rows.
// Missing ids render as a placeholder.
func (l *Lister) SetNames(names NameIndex) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = names
	for i := range l.items {
		l.items[i].StaffName = names.Resolve(l.items[i].StaffID)
	}
}

// SetFilters replaces the filter set and snaps back to the first page.
func (l *Lister) SetFilters(f Filters) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = f
	l.page = 1
}

// SetSort selects a sort column, flipping direction on repeat picks.
// Unknown keys are ignored and the page is kept.
func (l *Lister) SetSort(key string) {
	if _, ok := sortKeys[key]; !ok {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sortKey == key {
		if l.sortDir == listview.Asc {
			l.sortDir = listview.Desc
		} else {
			l.sortDir = listview.Asc
		}
		return
	}
	l.sortKey = key
	l.sortDir = listview.Asc
}

func (l *Lister) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if page < 1 {
		page = 1
	}
	l.page = page
}

// Load fetches the collection for the current filters, dropping the
// result with ErrStale if a newer load began meanwhile.
func (l *Lister) Load(ctx context.Context) error {
	l.mu.Lock()
	f := l.filters
	names := l.names
	l.mu.Unlock()

	ticket := l.gen.Begin()
	items, err := l.fetch(ctx, f)
	if err != nil {
		return err
	}
	if !l.gen.IsCurrent(ticket) {
		return listview.ErrStale
	}

	if names != nil {
		for i := range items {
			items[i].StaffName = names.Resolve(items[i].StaffID)
		}
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

func (l *Lister) fetch(ctx context.Context, f Filters) ([]Schedule, error) {
	hasRange := f.StartTime != "" && f.EndTime != ""
	switch {
	case f.StaffID != 0 && hasRange:
		return l.fetcher.FetchByStaffAndRange(ctx, f.StaffID, f.StartTime, f.EndTime)
	case hasRange:
		return l.fetcher.FetchByRange(ctx, f.StartTime, f.EndTime)
	case f.StaffID != 0:
		return l.fetcher.FetchByStaff(ctx, f.StaffID)
	case f.ShiftType != "" && f.ShiftType != FilterAll:
		return l.fetcher.FetchByShiftType(ctx, f.ShiftType)
	case f.Department != "":
		return l.fetcher.FetchByDepartment(ctx, f.Department)
	case f.ActiveOnly:
		return l.fetcher.FetchActive(ctx)
	default:
		return l.fetcher.FetchAll(ctx)
	}
}

// View sorts and paginates the loaded collection.
func (l *Lister) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	sorted := listview.Sort(l.items, sortKeys[l.sortKey], l.sortDir)
	return View{
		Items:      listview.Paginate(sorted, l.page),
		Page:       l.page,
		TotalPages: listview.Pages(len(sorted)),
		Total:      len(sorted),
	}
}
