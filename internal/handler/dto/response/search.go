package response

import (
	"time"

	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/indexing"
)

type SearchDocumentResponse struct {
	ID                 int64      `json:"id"`
	BookingReference   string     `json:"bookingReference"`
	ConfirmationNumber string     `json:"confirmationNumber"`
	UserID             int64      `json:"userId"`
	HotelID            int64      `json:"hotelId"`
	HotelName          string     `json:"hotelName,omitempty"`
	HotelCity          string     `json:"hotelCity,omitempty"`
	HotelCountry       string     `json:"hotelCountry,omitempty"`
	CheckIn            string     `json:"checkIn"`
	CheckOut           string     `json:"checkOut"`
	StayDuration       *int       `json:"stayDuration"`
	RoomType           string     `json:"roomType,omitempty"`
	Rooms              int        `json:"rooms"`
	Guests             int        `json:"guests"`
	TotalCents         int64      `json:"totalCents"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus,omitempty"`
	GuestName          string     `json:"guestName,omitempty"`
	IsActive           bool       `json:"isActive"`
	IsUpcoming         bool       `json:"isUpcoming"`
	IsPast             bool       `json:"isPast"`
	Tags               []string   `json:"tags"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type SyncReportResponse struct {
	RunID     string `json:"runId"`
	Pages     int    `json:"pages"`
	Processed int    `json:"processed"`
	Indexed   int    `json:"indexed"`
	Updated   int    `json:"updated"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func FromDocument(d search.Document) SearchDocumentResponse {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return SearchDocumentResponse{
		ID:                 d.ID,
		BookingReference:   d.BookingReference,
		ConfirmationNumber: d.ConfirmationNumber,
		UserID:             d.UserID,
		HotelID:            d.HotelID,
		HotelName:          d.HotelName,
		HotelCity:          d.HotelCity,
		HotelCountry:       d.HotelCountry,
		CheckIn:            d.CheckInDate.Format(dateLayout),
		CheckOut:           d.CheckOutDate.Format(dateLayout),
		StayDuration:       d.StayDuration,
		RoomType:           d.RoomType,
		Rooms:              d.NumberOfRooms,
		Guests:             d.NumberOfGuests,
		TotalCents:         d.TotalCents,
		Status:             d.Status.String(),
		PaymentStatus:      d.PaymentStatus,
		GuestName:          d.GuestName,
		IsActive:           d.IsActive,
		IsUpcoming:         d.IsUpcoming,
		IsPast:             d.IsPast,
		Tags:               tags,
		CancelledAt:        d.CancelledAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func FromDocuments(docs []search.Document) []SearchDocumentResponse {
	out := make([]SearchDocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = FromDocument(d)
	}
	return out
}

func FromDocumentPage(p pagination.Page[search.Document]) PageResponse[SearchDocumentResponse] {
	return PageResponse[SearchDocumentResponse]{
		Items:      FromDocuments(p.Items),
		Page:       p.Number,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		HasNext:    p.HasNext,
	}
}

func FromSyncReport(r indexing.Report) SyncReportResponse {
	return SyncReportResponse{
		RunID:     r.RunID.String(),
		Pages:     r.Pages,
		Processed: r.Processed,
		Indexed:   r.Indexed,
		Updated:   r.Updated,
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
}
