package reservation

import "time"

// Accept commits proposed values into accepted ones and marks the reservation
// verified. dayIDs restricts which day prices are committed; none means all.
// It reports false when the reservation was already verified, in which case
// nothing is touched.
func (r *Reservation) Accept(now time.Time, dayIDs ...int64) bool {
	if r.IsVerified {
		return false
	}

	var filter map[int64]struct{}
	if len(dayIDs) > 0 {
		filter = make(map[int64]struct{}, len(dayIDs))
		for _, id := range dayIDs {
			filter[id] = struct{}{}
		}
	}

	r.PriceAccepted = r.Price
	r.NettoPriceAccepted = r.NettoPrice

	for i := range r.Rooms {
		room := &r.Rooms[i]
		if room.IsDeleted {
			continue
		}
		room.acceptRoom()
		for j := range room.Days {
			day := &room.Days[j]
			if filter != nil {
				if _, ok := filter[day.ID]; !ok {
					continue
				}
			}
			day.PriceOriginal = day.PriceChanged
			day.PriceAccepted = day.PriceChanged
		}
	}

	r.IsVerified = true
	verifiedAt := now
	r.VerifiedAt = &verifiedAt
	return true
}

func (r *Room) acceptRoom() {
	r.ChannelRateID = r.ChannelRateIDChanged
	r.CheckInOriginal = r.CheckIn
	r.CheckOutOriginal = r.CheckOut
	if r.RatePlanChanged() {
		r.RatePlanIDOriginal = r.RatePlanID
		r.PolicyOriginal = r.Policy.Clone()
	}
	r.PriceAccepted = r.Price
	r.NettoPriceAccepted = r.NettoPrice
}

// Unverify marks a reservation as needing review again, e.g. after a changed snapshot.
func (r *Reservation) Unverify() {
	r.IsVerified = false
	r.VerifiedAt = nil
}
