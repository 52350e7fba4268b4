package response

import (
	"time"

	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID                 int64      `json:"id"`
	Reference          string     `json:"reference"`
	ConfirmationNumber string     `json:"confirmationNumber"`
	UserID             int64      `json:"userId"`
	HotelID            int64      `json:"hotelId"`
	CheckIn            string     `json:"checkIn"`
	CheckOut           string     `json:"checkOut"`
	Nights             int        `json:"nights"`
	RoomType           string     `json:"roomType,omitempty"`
	Rooms              int        `json:"rooms"`
	Guests             int        `json:"guests"`
	Price              Price      `json:"price"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	PaymentMethod      string     `json:"paymentMethod,omitempty"`
	Guest              Guest      `json:"guest"`
	SpecialRequests    string     `json:"specialRequests,omitempty"`
	Cancellation       *Cancelled `json:"cancellation,omitempty"`
	CheckedInAt        *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time `json:"checkedOutAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	CreatedBy          string     `json:"createdBy"`
	UpdatedBy          string     `json:"updatedBy"`
	Version            int64      `json:"version"`
}

type Price struct {
	BaseCents     int64 `json:"baseCents"`
	TaxesCents    int64 `json:"taxesCents"`
	FeesCents     int64 `json:"feesCents"`
	DiscountCents int64 `json:"discountCents"`
	TotalCents    int64 `json:"totalCents"`
}

type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Cancelled struct {
	At     time.Time `json:"at"`
	By     string    `json:"by,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

type RefundResponse struct {
	BookingID   int64  `json:"bookingId"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	TotalCents  int64  `json:"totalCents"`
	RefundCents int64  `json:"refundCents"`
}

type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	HasNext    bool  `json:"hasNext"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{
		ID:                 v.ID,
		Reference:          v.Reference,
		ConfirmationNumber: v.ConfirmationNumber,
		UserID:             v.UserID,
		HotelID:            v.HotelID,
		CheckIn:            v.CheckIn.Format(dateLayout),
		CheckOut:           v.CheckOut.Format(dateLayout),
		Nights:             v.Nights,
		RoomType:           v.RoomType,
		Rooms:              v.Rooms,
		Guests:             v.Guests,
		Price: Price{
			BaseCents:     v.BaseCents,
			TaxesCents:    v.TaxesCents,
			FeesCents:     v.FeesCents,
			DiscountCents: v.DiscountCents,
			TotalCents:    v.TotalCents,
		},
		Status:          v.Status.String(),
		PaymentStatus:   v.PaymentStatus,
		PaymentMethod:   v.PaymentMethod,
		Guest:           Guest{Name: v.GuestName, Email: v.GuestEmail, Phone: v.GuestPhone},
		SpecialRequests: v.SpecialRequests,
		CheckedInAt:     v.CheckedInAt,
		CheckedOutAt:    v.CheckedOutAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		CreatedBy:       v.CreatedBy,
		UpdatedBy:       v.UpdatedBy,
		Version:         v.Version,
	}
	if v.CancelledAt != nil {
		res.Cancellation = &Cancelled{At: *v.CancelledAt, By: v.CancelledBy, Reason: v.CancellationReason}
	}
	return res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromBookingPage(p pagination.Page[*queries.BookingView]) PageResponse[*BookingResponse] {
	return PageResponse[*BookingResponse]{
		Items:      FromBookingViews(p.Items),
		Page:       p.Number,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		HasNext:    p.HasNext,
	}
}

func FromRefundView(v *queries.RefundView) *RefundResponse {
	return &RefundResponse{
		BookingID:   v.BookingID,
		Reference:   v.Reference,
		Status:      v.Status.String(),
		TotalCents:  v.TotalCents,
		RefundCents: v.RefundCents,
	}
}
