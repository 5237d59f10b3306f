package staff

import (
	"context"
	"strings"
	"sync"

	"github.com/hospital/gateway/pkg/listview"
)

// sortKeys is the closed set of staff table sort columns.
var sortKeys = map[string]listview.Compare[Staff]{
	"fullName":    listview.ByString(func(s Staff) string { return s.FullName }),
	"email":       listview.ByString(func(s Staff) string { return s.Email }),
	"staffType":   listview.ByString(func(s Staff) string { return string(s.StaffType) }),
	"department":  listview.ByString(func(s Staff) string { return s.Department }),
	"joiningDate": listview.ByString(func(s Staff) string { return s.JoiningDate }),
}

// View is one renderable page of the staff table.
type View struct {
	Items      []Staff
	Page       int
	TotalPages int
	Total      int
}

// Lister drives the staff table. Server-backed filters pick which
// endpoint to hit, in fixed precedence: staff type, then department,
// then specialization, then active-only, then the full collection.
// The search term always narrows client-side on top of that.
type Lister struct {
	fetcher Fetcher
	gen     listview.Generation

	mu      sync.Mutex
	filters Filters
	sortKey string
	sortDir listview.Direction
	items   []Staff
	page    int
}

func NewLister(fetcher Fetcher) *Lister {
	return &Lister{
		fetcher: fetcher,
		sortKey: "fullName",
		sortDir: listview.Asc,
		page:    1,
	}
}

// SetFilters replaces the filter set and snaps back to the first page.
func (l *Lister) SetFilters(f Filters) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = f
	l.page = 1
}

// SetSort selects a sort column. Picking the current column flips the
// direction; picking a new one starts ascending. Unknown keys are
// ignored. The page is kept: re-ordering does not lose the reader's
// place.
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

// Load fetches the collection for the current filters. If another Load
// begins before this one lands, the result is dropped and ErrStale is
// returned; the view keeps whatever the newest load produces.
func (l *Lister) Load(ctx context.Context) error {
	l.mu.Lock()
	f := l.filters
	l.mu.Unlock()

	ticket := l.gen.Begin()
	items, err := l.fetch(ctx, f)
	if err != nil {
		return err
	}
	if !l.gen.IsCurrent(ticket) {
		return listview.ErrStale
	}

	l.mu.Lock()
	l.items = applySearch(items, f.SearchTerm)
	l.mu.Unlock()
	return nil
}

func (l *Lister) fetch(ctx context.Context, f Filters) ([]Staff, error) {
	switch {
	case f.StaffType != "":
		return l.fetcher.FetchByType(ctx, f.StaffType)
	case f.Department != "":
		return l.fetcher.FetchByDepartment(ctx, f.Department)
	case f.Specialization != "":
		return l.fetcher.FetchBySpecialization(ctx, f.Specialization)
	case f.ActiveOnly:
		return l.fetcher.FetchActive(ctx)
	default:
		return l.fetcher.FetchAll(ctx)
	}
}

func applySearch(items []Staff, term string) []Staff {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]Staff, 0, len(items))
	for _, s := range items {
		if strings.Contains(strings.ToLower(s.FullName), needle) ||
			strings.Contains(strings.ToLower(s.Email), needle) ||
			strings.Contains(s.PhoneNumber, term) {
			out = append(out, s)
		}
	}
	return out
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
