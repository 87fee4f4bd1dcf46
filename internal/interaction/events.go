package interaction

import "github.com/philipparndt/gochair/pkg/picker"

// Event is an input fed into a Session. The host translates its own input
// system into these.
type Event interface {
	isEvent()
}

// DragStart fires when manual camera control begins
type DragStart struct{}

// DragEnd fires when manual camera control ends
type DragEnd struct{}

// PointerMove carries the new pointer position in screen pixels
type PointerMove struct {
	Pointer picker.Pointer
}

// Click carries the pointer position of a click in screen pixels
type Click struct {
	Pointer picker.Pointer
}

// Resize carries the new viewport size in pixels
type Resize struct {
	Width, Height int
}

func (DragStart) isEvent()   {}
func (DragEnd) isEvent()     {}
func (PointerMove) isEvent() {}
func (Click) isEvent()       {}
func (Resize) isEvent()      {}
