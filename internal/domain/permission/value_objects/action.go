package value_objects

import "fmt"

type Action string

const (
	ActionCreate     Action = "create"
	ActionClaim      Action = "claim"
	ActionClose      Action = "close"
	ActionReopen     Action = "reopen"
	ActionTranscript Action = "transcript"
	ActionLink       Action = "link"
	ActionRead       Action = "read"
	ActionManage     Action = "manage"
	ActionLog        Action = "log"
)

var validActions = map[Action]bool{
	ActionCreate:     true,
	ActionClaim:      true,
	ActionClose:      true,
	ActionReopen:     true,
	ActionTranscript: true,
	ActionLink:       true,
	ActionRead:       true,
	ActionManage:     true,
	ActionLog:        true,
}

func NewAction(action string) (Action, error) {
	if action == "" {
		return "", fmt.Errorf("action cannot be empty")
	}

	a := Action(action)
	if !validActions[a] {
		return "", fmt.Errorf("invalid action: %s", action)
	}

	return a, nil
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}
