package shift

import "strings"

// ViewBy selects which entity group forms the grid rows.
type ViewBy string

const (
	ViewServiceClient ViewBy = "Service & Client"
	ViewClient        ViewBy = "Client"
	ViewWorker        ViewBy = "Worker"
)

// Views returns the selectable views in display order.
func Views() []ViewBy {
	return []ViewBy{ViewServiceClient, ViewClient, ViewWorker}
}

// ParseViewBy parses a view name. Accepts the display names and the short
// forms "service", "client" and "worker", case-insensitive.
func ParseViewBy(s string) (ViewBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "service & client", "service", "services", "service-client":
		return ViewServiceClient, nil
	case "client", "clients":
		return ViewClient, nil
	case "worker", "workers":
		return ViewWorker, nil
	default:
		return "", ErrInvalidView
	}
}

// Next returns the view after v, wrapping around.
func (v ViewBy) Next() ViewBy {
	views := Views()
	for i, candidate := range views {
		if candidate == v {
			return views[(i+1)%len(views)]
		}
	}
	return views[0]
}

// Matches reports whether the entity belongs to the row group of this view.
func (v ViewBy) Matches(e Entity) bool {
	switch v {
	case ViewWorker:
		return e.IsWorker()
	case ViewClient:
		return e.IsClient()
	case ViewServiceClient:
		return e.IsService()
	default:
		return false
	}
}
