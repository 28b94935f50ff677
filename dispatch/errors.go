package dispatch

import "fmt"

// ErrToolNotFound is returned when Call targets a name with no handler.
type ErrToolNotFound struct {
	Tool string
}

func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("dispatch: unknown tool: %s", e.Tool)
}
