package models

// EventSearch is an advanced event search. Only the enabled fields take part
// and a record matches when any enabled field contains Query.
type EventSearch struct {
	Query string

	Title bool

	Description bool

	Date bool
}

// AnyFieldEnabled reports whether at least one field participates.
func (s EventSearch) AnyFieldEnabled() bool {
	return s.Title || s.Description || s.Date
}

// AllFields returns a search over title, description and date, the plain
// event search.
func AllFields(query string) EventSearch {
	return EventSearch{Query: query, Title: true, Description: true, Date: true}
}
