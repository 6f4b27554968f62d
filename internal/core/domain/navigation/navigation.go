package navigation

// Destination is the screen a client should open after a successful action.
type Destination string

const (
	None Destination = ""
	Home Destination = "home"
)
