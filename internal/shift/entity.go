package shift

import "strings"

// Category tags an entity as a kind of worker, a service, or a client.
type Category string

const (
	CategorySupportWorker       Category = "Support Worker"
	CategorySeniorSupportWorker Category = "Senior Support Worker"
	CategoryTeamLeader          Category = "Team Leader"
	CategoryManager             Category = "Manager"
	CategoryService             Category = "Service"
	CategoryClient              Category = "Client"
)

// EntityStatus is the presence or operating state shown next to an entity.
type EntityStatus string

const (
	StatusOnline      EntityStatus = "online"
	StatusOffline     EntityStatus = "offline"
	StatusAway        EntityStatus = "away"
	StatusActive      EntityStatus = "active"
	StatusMaintenance EntityStatus = "maintenance"
)

// Entity is a worker, service, or client row in the grid.
type Entity struct {
	ID       int64
	Name     string
	Category Category
	Status   EntityStatus
	Email    string
	Initials string
	Address  string
}

// IsWorker reports whether the entity belongs to the worker group,
// meaning it is neither a service nor a client.
func (e Entity) IsWorker() bool {
	return e.Category != CategoryService && e.Category != CategoryClient
}

// IsService returns true for services.
func (e Entity) IsService() bool {
	return e.Category == CategoryService
}

// IsClient returns true for clients.
func (e Entity) IsClient() bool {
	return e.Category == CategoryClient
}

// FindByName returns the entity whose display name equals name exactly.
func FindByName(entities []Entity, name string) (Entity, bool) {
	if name == "" {
		return Entity{}, false
	}
	for _, e := range entities {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}

// FindByID returns the entity with the given id.
func FindByID(entities []Entity, id int64) (Entity, bool) {
	for _, e := range entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// ShortName trims a trailing parenthesised nickname, so
// "Abu, Blessing (Blessing)" becomes "Abu, Blessing".
func (e Entity) ShortName() string {
	if i := strings.Index(e.Name, " ("); i > 0 && strings.HasSuffix(e.Name, ")") {
		return e.Name[:i]
	}
	return e.Name
}
