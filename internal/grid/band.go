package grid

// Band is a part of the day used to shade slot columns.
type Band int

const (
	BandNight Band = iota
	BandMorning
	BandMidMorning
	BandAfternoon
	BandLateAfternoon
	BandEvening
)

// BandOf returns the part of the day a slot belongs to.
func BandOf(slot int) Band {
	switch h := Clamp(slot); {
	case h >= 6 && h < 9:
		return BandMorning
	case h >= 9 && h < 12:
		return BandMidMorning
	case h >= 12 && h < 15:
		return BandAfternoon
	case h >= 15 && h < 18:
		return BandLateAfternoon
	case h >= 18 && h < 21:
		return BandEvening
	default:
		return BandNight
	}
}

func (b Band) String() string {
	switch b {
	case BandMorning:
		return "morning"
	case BandMidMorning:
		return "mid-morning"
	case BandAfternoon:
		return "afternoon"
	case BandLateAfternoon:
		return "late afternoon"
	case BandEvening:
		return "evening"
	default:
		return "night"
	}
}
