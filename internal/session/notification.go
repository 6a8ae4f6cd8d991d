package session

// Level indicates the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// Notification is a user visible message, shown as a toast.
//
// Notifications sharing an ID replace each other instead of stacking.
type Notification struct {
	ID      string
	Title   string
	Message string
	Level   Level
}

// FetchErrorID identifies the fetch failure toast.
const FetchErrorID = "fetch-error"

// FetchErrorTitle is the title of the fetch failure toast.
const FetchErrorTitle = "Couldn't fetch fresh releases"

func fetchErrorNotification(err error) Notification {
	return Notification{
		ID:      FetchErrorID,
		Title:   FetchErrorTitle,
		Message: err.Error(),
		Level:   LevelError,
	}
}
