package domain

const (
	// SlotAlignmentMinutes шаг, по которому выравнивается начало и конец бронирования
	SlotAlignmentMinutes = 30

	// HoursPerDay количество часовых слотов в разбивке занятости
	HoursPerDay = 24

	DefaultPageSize = 100
	MaxPageSize     = 100

	MaxNotesLength     = 500
	MaxCourtNameLength = 100
	MaxCourtDescLength = 500
	MaxHourlyRate      = 1_000_000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает корт
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
