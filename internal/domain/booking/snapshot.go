package booking

import "time"

// Snapshot is the flat, serializable state of a Reservation used by adapters.
type Snapshot struct {
	ID                 int64      `json:"id"`
	Reference          string     `json:"reference"`
	ConfirmationNumber string     `json:"confirmationNumber"`
	UserID             int64      `json:"userId"`
	HotelID            int64      `json:"hotelId"`
	CheckIn            time.Time  `json:"checkIn"`
	CheckOut           time.Time  `json:"checkOut"`
	RoomType           string     `json:"roomType,omitempty"`
	Rooms              int        `json:"rooms"`
	Guests             int        `json:"guests"`
	BaseCents          int64      `json:"baseCents"`
	TaxesCents         int64      `json:"taxesCents"`
	FeesCents          int64      `json:"feesCents"`
	TotalCents         int64      `json:"totalCents"`
	DiscountCents      int64      `json:"discountCents"`
	Status             Status     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	PaymentMethod      string     `json:"paymentMethod,omitempty"`
	GuestName          string     `json:"guestName"`
	GuestEmail         string     `json:"guestEmail,omitempty"`
	GuestPhone         string     `json:"guestPhone,omitempty"`
	SpecialRequests    string     `json:"specialRequests,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy        string     `json:"cancelledBy,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	CheckedInAt        *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time `json:"checkedOutAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	CreatedBy          string     `json:"createdBy"`
	UpdatedBy          string     `json:"updatedBy"`
	Version            int64      `json:"version"`
}

func (r *Reservation) Snapshot() Snapshot {
	s := Snapshot{
		ID:                 r.id,
		Reference:          r.reference,
		ConfirmationNumber: r.confirmationNumber,
		UserID:             r.userID,
		HotelID:            r.hotelID,
		CheckIn:            r.stay.CheckIn(),
		CheckOut:           r.stay.CheckOut(),
		RoomType:           r.roomType,
		Rooms:              r.occupancy.Rooms(),
		Guests:             r.occupancy.Guests(),
		BaseCents:          r.price.Base.Cents(),
		TaxesCents:         r.price.Taxes.Cents(),
		FeesCents:          r.price.Fees.Cents(),
		TotalCents:         r.price.Total.Cents(),
		DiscountCents:      r.price.Discount.Cents(),
		Status:             r.status,
		PaymentStatus:      r.paymentStatus,
		PaymentMethod:      r.paymentMethod,
		GuestName:          r.guest.Name,
		GuestEmail:         r.guest.Email,
		GuestPhone:         r.guest.Phone,
		SpecialRequests:    r.specialRequests,
		CheckedInAt:        r.checkedInAt,
		CheckedOutAt:       r.checkedOutAt,
		CreatedAt:          r.createdAt,
		UpdatedAt:          r.updatedAt,
		CreatedBy:          r.createdBy,
		UpdatedBy:          r.updatedBy,
		Version:            r.version,
	}
	if r.cancellation != nil {
		at := r.cancellation.At
		s.CancelledAt = &at
		s.CancelledBy = r.cancellation.By
		s.CancellationReason = r.cancellation.Reason
	}
	return s
}

// Reconstruct rebuilds a Reservation from persisted state without re-validating it.
func Reconstruct(s Snapshot) *Reservation {
	r := &Reservation{
		id:                 s.ID,
		reference:          s.Reference,
		confirmationNumber: s.ConfirmationNumber,
		userID:             s.UserID,
		hotelID:            s.HotelID,
		stay:               StayWindow{checkIn: DateOf(s.CheckIn), checkOut: DateOf(s.CheckOut)},
		roomType:           s.RoomType,
		occupancy:          Occupancy{rooms: s.Rooms, guests: s.Guests},
		price: PriceBreakdown{
			Base:     MoneyFromCents(s.BaseCents),
			Taxes:    MoneyFromCents(s.TaxesCents),
			Fees:     MoneyFromCents(s.FeesCents),
			Total:    MoneyFromCents(s.TotalCents),
			Discount: MoneyFromCents(s.DiscountCents),
		},
		status:          s.Status,
		paymentStatus:   s.PaymentStatus,
		paymentMethod:   s.PaymentMethod,
		guest:           GuestContact{Name: s.GuestName, Email: s.GuestEmail, Phone: s.GuestPhone},
		specialRequests: s.SpecialRequests,
		checkedInAt:     s.CheckedInAt,
		checkedOutAt:    s.CheckedOutAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		createdBy:       s.CreatedBy,
		updatedBy:       s.UpdatedBy,
		version:         s.Version,
	}
	if s.CancelledAt != nil {
		r.cancellation = &Cancellation{At: *s.CancelledAt, By: s.CancelledBy, Reason: s.CancellationReason}
	}
	return r
}
