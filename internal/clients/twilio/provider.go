package twilio

//go:generate go run go.uber.org/mock/mockgen@latest -source=provider.go -destination=mocks_test.go -package=twilio

import (
	"call-relay/internal/callsession"
	"call-relay/internal/config"
	"call-relay/internal/observability"
	"context"
	"errors"
	"fmt"

	twiliogo "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrCallNotCreated = errors.New("twilio did not create the call")

// statusEvents are the call progress events reported to StatusPath.
var statusEvents = []string{"initiated", "ringing", "answered", "completed"}

// CallCreator is the slice of the Twilio REST API used here. *openapi.ApiService implements it.
type CallCreator interface {
	CreateCall(params *openapi.CreateCallParams) (*openapi.ApiV2010Call, error)
}

// Provider places outbound calls through the Twilio REST API and drives the
// conversation with inline TwiML.
type Provider struct {
	api      CallCreator
	from     string
	dialogue Dialogue
	logger   *observability.Logger
}

// NewProvider creates a Twilio REST client for the account in cfg.
func NewProvider(cfg config.TwilioConfig, publicBaseURL string, logger *observability.Logger) *Provider {
	client := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewProviderWithAPI(client.Api, cfg, publicBaseURL, logger)
}

// NewProviderWithAPI creates a Provider over an existing REST API handle.
func NewProviderWithAPI(api CallCreator, cfg config.TwilioConfig, publicBaseURL string, logger *observability.Logger) *Provider {
	return &Provider{
		api:  api,
		from: cfg.FromNumber,
		dialogue: Dialogue{
			PublicBaseURL: publicBaseURL,
			Language:      cfg.SpeechLanguage,
		},
		logger: logger,
	}
}

// Dialogue returns the TwiML renderer shared with the voice webhooks.
func (p *Provider) Dialogue() Dialogue {
	return p.dialogue
}

// StartCall dials the phone. The opening line is spoken by the initial TwiML,
// after which Twilio posts recognised speech to the gather webhook.
func (p *Provider) StartCall(ctx context.Context, call callsession.OutboundCall) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "telephony_provider", Value: config.TelephonyTwilio},
		observability.Field{Key: "call_id", Value: call.CallID},
	)

	doc, err := p.dialogue.Prompt(call.CallID, call.FirstReplic)
	if err != nil {
		p.logger.Error(ctx, "failed to build initial twiml", err)
		return err
	}

	params := &openapi.CreateCallParams{}
	params.SetTo(call.Phone)
	params.SetFrom(p.from)
	params.SetTwiml(doc)
	params.SetStatusCallback(p.dialogue.StatusURL(call.CallID))
	params.SetStatusCallbackMethod("POST")
	params.SetStatusCallbackEvent(statusEvents)

	resp, err := p.api.CreateCall(params)
	if err != nil {
		p.logger.Error(ctx, "failed to create twilio call", err)
		return fmt.Errorf("failed to create twilio call: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		p.logger.Error(ctx, "twilio returned no call sid", ErrCallNotCreated)
		return ErrCallNotCreated
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "twilio_call_sid", Value: *resp.Sid})
	p.logger.Info(ctx, "twilio call created")
	return nil
}
