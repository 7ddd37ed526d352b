package home

import (
	"context"
	"io"

	getCalendar "github.com/kokoroskosv-git/Parking-slot-app/internal/usecase/get_calendar"
)

type GetCalendarUseCase interface {
	Execute(ctx context.Context) (*getCalendar.Response, error)
}

// Renderer renders the named page template into w.
type Renderer interface {
	Render(w io.Writer, name string, data interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
