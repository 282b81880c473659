package response

import (
	"time"

	"fastlane-booking/internal/data/entity"
)

type BookingDetailResponse struct {
	ActivityID      string  `json:"activity_id"`
	Quantity        int     `json:"quantity"`
	Name            string  `json:"name"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type BookingResponse struct {
	ID               string                  `json:"id"`
	BookingNumber    string                  `json:"booking_number"`
	VendorID         string                  `json:"vendor_id"`
	Details          []BookingDetailResponse `json:"booking_details"`
	TotalPrice       float64                 `json:"total_price"`
	FormattedTotal   string                  `json:"formatted_total,omitempty"`
	BookingDate      string                  `json:"booking_date"`
	BookingTime      string                  `json:"booking_time"`
	CustomerName     string                  `json:"customer_name"`
	CustomerEmail    string                  `json:"customer_email"`
	CustomerWhatsApp *string                 `json:"customer_whatsapp,omitempty"`
	Comments         *string                 `json:"comments,omitempty"`
	ParticipantCount int                     `json:"participant_count"`
	IsPaid           bool                    `json:"is_paid"`
	IsFulfilled      bool                    `json:"is_fulfilled"`
	CreatedAt        time.Time               `json:"created_at"`
}

func BookingToResponse(b *entity.Booking, formattedTotal string) BookingResponse {
	details := make([]BookingDetailResponse, len(b.Details))
	for i, d := range b.Details {
		details[i] = BookingDetailResponse{
			ActivityID:      d.ActivityID.String(),
			Quantity:        d.Quantity,
			Name:            d.Name,
			PriceAtPurchase: d.PriceAtPurchase,
		}
	}

	return BookingResponse{
		ID:               b.ID.String(),
		BookingNumber:    b.BookingNumber,
		VendorID:         b.VendorID.String(),
		Details:          details,
		TotalPrice:       b.TotalPrice,
		FormattedTotal:   formattedTotal,
		BookingDate:      b.BookingDate.Format("2006-01-02"),
		BookingTime:      b.BookingTime,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerWhatsApp: b.CustomerWhatsApp,
		Comments:         b.Comments,
		ParticipantCount: b.ParticipantCount,
		IsPaid:           b.IsPaid,
		IsFulfilled:      b.IsFulfilled,
		CreatedAt:        b.CreatedAt,
	}
}
