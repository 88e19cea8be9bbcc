package notificationservice

// AppointmentEvent уведомление о событии с записью
type AppointmentEvent struct {
	AppointmentID int64   `json:"appointment_id"`
	Event         string  `json:"event"` // created | cancelled | paid
	CustomerID    *int64  `json:"customer_id,omitempty"`
	CustomerName  *string `json:"customer_name,omitempty"`
	StylistName   string  `json:"stylist_name"`
	ServiceName   *string `json:"service_name,omitempty"`
	BookingDate   string  `json:"booking_date"` // YYYY-MM-DD
	StartTime     string  `json:"start_time"`   // HH:MM
}

const (
	EventCreated   = "created"
	EventCancelled = "cancelled"
	EventPaid      = "paid"
)
