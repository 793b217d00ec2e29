package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ChangelogAction string

const (
	ActionCreate          ChangelogAction = "create"
	ActionImport          ChangelogAction = "import"
	ActionAccept          ChangelogAction = "accept"
	ActionAcceptHold      ChangelogAction = "accept_hold"
	ActionCancel          ChangelogAction = "cancel"
	ActionMove            ChangelogAction = "move"
	ActionUpdateGuest     ChangelogAction = "update_guest"
	ActionUpdatePrices    ChangelogAction = "update_prices"
	ActionRoomClose       ChangelogAction = "room_close"
	ActionUpdateRoomClose ChangelogAction = "update_room_close"
	ActionDeleteRoomClose ChangelogAction = "delete_room_close"
)

type ChangelogEntry struct {
	HouseID       int64           `json:"house_id"`
	ReservationID int64           `json:"reservation_id"`
	Action        ChangelogAction `json:"action"`
	// StaffID is uuid.Nil for channel imports.
	StaffID   uuid.UUID `json:"staff_id"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
