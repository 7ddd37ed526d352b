package domain

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD, wire and storage format
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, user-facing format
)
