package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Notifier delivers a single text message. Implementations must be safe
// for concurrent use.
type Notifier interface {
	Send(ctx context.Context, to, body string) error
}

// Business identifies the salon in outgoing texts.
type Business struct {
	Name    string
	Address string
	Phone   string
}

const whenLayout = "Jan 02, 3:04 PM"

// Confirmation is the customer's booking confirmation.
func Confirmation(biz Business, serviceName string, start time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Your %s at %s is confirmed.", biz.Name, serviceName, start.Format(whenLayout))
	if biz.Address != "" {
		fmt.Fprintf(&b, " %s.", biz.Address)
	}
	if biz.Phone != "" {
		fmt.Fprintf(&b, " Call %s to change.", biz.Phone)
	}
	return b.String()
}

// AdminNotice tells the owner about a new booking.
func AdminNotice(customerName, customerPhone, serviceName string, start time.Time) string {
	return fmt.Sprintf("New booking: %s %s - %s at %s", customerName, customerPhone, serviceName, start.Format(whenLayout))
}

// Reminder is sent the day before the appointment.
func Reminder(biz Business, serviceName string, start time.Time) string {
	msg := fmt.Sprintf("%s: Reminder, your %s is tomorrow at %s.", biz.Name, serviceName, start.Format("3:04 PM"))
	if biz.Phone != "" {
		msg += fmt.Sprintf(" Call %s to change.", biz.Phone)
	}
	return msg
}

// Noop logs messages instead of sending them. It is used when SMS
// credentials are not configured.
type Noop struct {
	Log zerolog.Logger
}

func (n Noop) Send(_ context.Context, to, body string) error {
	n.Log.Debug().Str("to", to).Str("body", body).Msg("sms disabled, message not sent")
	return nil
}
