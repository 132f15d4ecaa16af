package app

import "time"

type ExportResult struct {
	Path     string
	Data     []byte
	Subjects int
	Days     int
	Entries  int
}

type ImportResult struct {
	Subjects      int
	Days          int
	Entries       int
	Notifications int
	SavedAt       time.Time
}
