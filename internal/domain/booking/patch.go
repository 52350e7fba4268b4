package booking

import "time"

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	CheckIn         *time.Time
	CheckOut        *time.Time
	RoomType        *string
	Rooms           *int
	Guests          *int
	DiscountCents   *int64
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	SpecialRequests *string
	PaymentStatus   *string
	PaymentMethod   *string
}

func (p Patch) TouchesDates() bool {
	return p.CheckIn != nil || p.CheckOut != nil
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// PatchResult describes what ApplyPatch actually changed.
type PatchResult struct {
	DatesChanged bool
	Repriced     bool
}
