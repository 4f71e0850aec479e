package booking

// Slot is the unit the overlap check runs on: one court on one date.
type Slot struct {
	CourtID uint
	Date    string
	Interval
}

func NewSlot(courtID uint, date, start, end string) (Slot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Slot{}, err
	}
	iv, err := NewInterval(start, end)
	if err != nil {
		return Slot{}, err
	}
	return Slot{CourtID: courtID, Date: d, Interval: iv}, nil
}

func (s Slot) StartTime() string { return s.Start.String() }
func (s Slot) EndTime() string   { return s.End.String() }
