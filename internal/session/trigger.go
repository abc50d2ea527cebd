package session

// Trigger is the classified intent of an inbound message.
type Trigger int

const (
	TriggerText Trigger = iota
	TriggerStartPhone
	TriggerStartID
	TriggerCancel
	TriggerWelcome
	TriggerHelp
	TriggerQuickStart
)

func (t Trigger) String() string {
	switch t {
	case TriggerStartPhone:
		return "start_phone"
	case TriggerStartID:
		return "start_national_id"
	case TriggerCancel:
		return "cancel"
	case TriggerWelcome:
		return "welcome"
	case TriggerHelp:
		return "help"
	case TriggerQuickStart:
		return "quick_start"
	default:
		return "text"
	}
}

// Question is the single pending question of a session; QuestionNone is the
// idle state.
type Question int

const (
	QuestionNone Question = iota
	QuestionPhone
	QuestionNationalID
)

func (q Question) String() string {
	switch q {
	case QuestionPhone:
		return "awaiting_phone"
	case QuestionNationalID:
		return "awaiting_national_id"
	default:
		return "idle"
	}
}

// Event is one inbound message for a session.
type Event struct {
	SessionID string
	Text      string
	Trigger   Trigger
	// DisplayName greets the user on TriggerWelcome; optional.
	DisplayName string
}
