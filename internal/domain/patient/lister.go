package patient

import (
	"context"
	"strings"
	"sync"

	"github.com/hospital/gateway/pkg/listview"
)

// sortKeys is the closed set of patient table sort columns.
var sortKeys = map[string]listview.Compare[Patient]{
	"fullName":         listview.ByString(func(p Patient) string { return p.FullName }),
	"nationalId":       listview.ByString(func(p Patient) string { return p.NationalID }),
	"dateOfBirth":      listview.ByString(func(p Patient) string { return p.DateOfBirth }),
	"bloodType":        listview.ByString(func(p Patient) string { return p.BloodType }),
	"registrationDate": listview.ByString(func(p Patient) string { return p.RegistrationDate }),
}

// View is one renderable page of the patient table.
type View struct {
	Items      []Patient
	Page       int
	TotalPages int
	Total      int
}

// Lister drives the patient table. Only the active-only toggle picks a
// different endpoint; blood type, gender, and search narrow the fetched
// collection client-side, with "all" meaning no narrowing.
type Lister struct {
	fetcher Fetcher
	gen     listview.Generation

	mu      sync.Mutex
	filters Filters
	sortKey string
	sortDir listview.Direction
	items   []Patient
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
	l.mu.Unlock()

	ticket := l.gen.Begin()

	var items []Patient
	var err error
	if f.ActiveOnly {
		items, err = l.fetcher.FetchActive(ctx)
	} else {
		items, err = l.fetcher.FetchAll(ctx)
	}
	if err != nil {
		return err
	}
	if !l.gen.IsCurrent(ticket) {
		return listview.ErrStale
	}

	l.mu.Lock()
	l.items = narrow(items, f)
	l.mu.Unlock()
	return nil
}

func narrow(items []Patient, f Filters) []Patient {
	needle := strings.ToLower(f.SearchTerm)
	out := make([]Patient, 0, len(items))
	for _, p := range items {
		if chosen(f.BloodType) && p.BloodType != f.BloodType {
			continue
		}
		if chosen(f.Gender) && !strings.EqualFold(p.Gender, f.Gender) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.FullName), needle) &&
			!strings.Contains(strings.ToLower(p.Email), needle) &&
			!strings.Contains(p.NationalID, f.SearchTerm) &&
			!strings.Contains(p.PhoneNumber, f.SearchTerm) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func chosen(v string) bool {
	return v != "" && v != FilterAll
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
