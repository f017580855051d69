package schedule

// Code identifies which validation rule failed.
type Code string

const (
	CodeInvalidRecurrenceType Code = "InvalidRecurrenceType"
	CodeEmptyWeeklyDays       Code = "EmptyWeeklyDays"
	CodeDayOfMonthOutOfRange  Code = "DayOfMonthOutOfRange"
	CodeIntervalTooSmall      Code = "IntervalTooSmall"
	CodeInvalidTimeFormat     Code = "InvalidTimeFormat"
)

// ValidationError is a single field-level failure, returned as a value so
// the transport layer decides status codes and formatting. Rules are checked
// in a fixed order and the first failure wins, keeping user-facing messages
// deterministic.
type ValidationError struct {
	Code    Code
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	errInvalidRecurrenceType = &ValidationError{CodeInvalidRecurrenceType, "recurrence_type", "recurrence type must be DAILY, WEEKLY, MONTHLY or CUSTOM"}
	errEmptyWeeklyDays       = &ValidationError{CodeEmptyWeeklyDays, "days_of_week", "select at least one day"}
	errDayOfMonthOutOfRange  = &ValidationError{CodeDayOfMonthOutOfRange, "day_of_month", "day of month must be between 1 and 31"}
	errIntervalTooSmall      = &ValidationError{CodeIntervalTooSmall, "interval", "interval must be at least 1"}
	errInvalidTimeFormat     = &ValidationError{CodeInvalidTimeFormat, "time", "time must be in 24-hour HH:MM format"}
)

// Input is a proposed schedule as it arrives from a client: one type tag
// plus whichever optional fields the client chose to send.
type Input struct {
	RecurrenceType string
	Interval       *int
	DaysOfWeek     []string
	DayOfMonth     *int
	Time           *string
}

// Parse validates in and returns the corresponding Schedule variant, or the
// first failing rule as a *ValidationError. Check order: recurrence type,
// variant fields, then the optional time.
func Parse(in Input) (Schedule, error) {
	var (
		s   Schedule
		err error
	)
	switch Kind(in.RecurrenceType) {
	case Daily:
		s = NewDaily()
	case Weekly:
		if len(in.DaysOfWeek) == 0 {
			return Schedule{}, errEmptyWeeklyDays
		}
		s, err = NewWeekly(in.DaysOfWeek)
	case Monthly:
		if in.DayOfMonth == nil {
			return Schedule{}, errDayOfMonthOutOfRange
		}
		s, err = NewMonthly(*in.DayOfMonth)
	case Custom:
		if in.Interval == nil {
			return Schedule{}, errIntervalTooSmall
		}
		s, err = NewCustom(*in.Interval)
	default:
		return Schedule{}, errInvalidRecurrenceType
	}
	if err != nil {
		return Schedule{}, err
	}
	if in.Time != nil && *in.Time != "" {
		s, err = s.WithTime(*in.Time)
		if err != nil {
			return Schedule{}, err
		}
	}
	return s, nil
}
