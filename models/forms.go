package models

// AlcoholForm is a drink as typed by the owner. Numbers arrive as text and are
// parsed by validation.
type AlcoholForm struct {
	DrinkName   string
	Milliliters string
	Percentage  string
	// Date is "2006-01-02"; blank means today.
	Date string
}

// EventForm is an event as typed by the owner.
type EventForm struct {
	Title       string
	Description string
	Date        string
}

// NoteForm is a note as typed by the owner.
type NoteForm struct {
	Title   string
	Content string
}

// UserForm is a legacy user profile as typed by the owner.
type UserForm struct {
	Name string
	Age  string
}
