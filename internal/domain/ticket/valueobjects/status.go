package valueobjects

import "fmt"

// Status is the lifecycle state of a ticket. The enumeration is flat:
// any status may move to any other status, gated only by authorization.
type Status int

const (
	StatusOpen       Status = 1
	StatusInProgress Status = 2
	StatusClosed     Status = 3
)

var statusNames = map[Status]string{
	StatusOpen:       "open",
	StatusInProgress: "in_progress",
	StatusClosed:     "closed",
}

// NewStatus validates an integer status value.
func NewStatus(v int) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return 0, fmt.Errorf("invalid status: %d", v)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) Int() int {
	return int(s)
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}
