package stickyheaders

// Command is a side effect a primitive asks the Application to perform after
// handling an event. Handlers return nil when they have nothing to request.
type Command any

// BatchCommand runs several commands in order.
type BatchCommand []Command

// AppendCommand merges next into current, flattening batches.
func AppendCommand(current Command, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}

	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if b, ok := c.(BatchCommand); ok {
			batch = append(batch, b...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen once the event is handled.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}

// ConsumeEventCommand marks the event as handled without a redraw.
type ConsumeEventCommand struct{}
