package reservation

type Status string

const (
	StatusNew    Status = "new"
	StatusModify Status = "modify"
	StatusHold   Status = "hold"
	StatusCancel Status = "cancel"
	StatusClose  Status = "close"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusModify, StatusHold, StatusCancel, StatusClose:
		return true
	default:
		return false
	}
}

// Source is where a booking came from. Everything except manual entry is an OTA.
type Source string

const (
	SourceManual  Source = "manual"
	SourceBooking Source = "booking"
	SourceExpedia Source = "expedia"
	SourceAgoda   Source = "agoda"
	SourceAirbnb  Source = "airbnb"
	SourceOther   Source = "other"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceBooking, SourceExpedia, SourceAgoda, SourceAirbnb, SourceOther:
		return true
	default:
		return false
	}
}

func (s Source) IsOTA() bool {
	return s != SourceManual
}

type CloseReason string

const (
	CloseReasonMaintenance CloseReason = "maintenance"
	CloseReasonRenovation  CloseReason = "renovation"
	CloseReasonOwnerUse    CloseReason = "owner_use"
	CloseReasonOther       CloseReason = "other"
)

func (r CloseReason) String() string {
	return string(r)
}

func (r CloseReason) IsValid() bool {
	switch r {
	case CloseReasonMaintenance, CloseReasonRenovation, CloseReasonOwnerUse, CloseReasonOther:
		return true
	default:
		return false
	}
}
