package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// messageAPI is the slice of the Twilio REST client used here.
type messageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type Twilio struct {
	api  messageAPI
	from string
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Twilio{api: client.Api, from: from}
}

// Send normalises to to E.164 before handing the message to Twilio.
func (t *Twilio) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dest := validators.ToE164(to)
	if dest == "" {
		return errors.New("sms: empty destination")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(dest)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("sms to %s: %w", dest, err)
	}
	if resp != nil && resp.ErrorMessage != nil {
		return fmt.Errorf("sms to %s: %s", dest, *resp.ErrorMessage)
	}
	return nil
}
