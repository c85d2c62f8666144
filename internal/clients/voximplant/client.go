package voximplant

import (
	"call-relay/internal/callsession"
	"call-relay/internal/config"
	"call-relay/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrProviderRejected = errors.New("voximplant rejected the call")

// scenarioVariables is passed to the call scenario as the "variables" parameter
type scenarioVariables struct {
	FirstReplic string `json:"first_replic"`
	CallID      string `json:"call_id"`
	Task        string `json:"task"`
}

// Client starts outbound calls by running a Voximplant scenario
type Client struct {
	cfg        config.VoximplantConfig
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new Voximplant scenario client
func NewClient(cfg config.VoximplantConfig, logger *observability.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// StartCall asks Voximplant to dial the phone and run the conversation scenario.
// Any status other than 200 is treated as a rejection.
func (c *Client) StartCall(ctx context.Context, call callsession.OutboundCall) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "telephony_provider", Value: config.TelephonyVoximplant},
		observability.Field{Key: "call_id", Value: call.CallID},
	)

	endpoint, err := c.buildURL(call)
	if err != nil {
		c.logger.Error(ctx, "failed to build voximplant request", err)
		return fmt.Errorf("failed to build scenario request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		c.logger.Error(ctx, "failed to create voximplant request", err)
		return fmt.Errorf("failed to create scenario request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call voximplant API", err)
		return fmt.Errorf("failed to run scenario: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "failed to read voximplant response", err)
		return fmt.Errorf("failed to read scenario response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: status %d: %s", ErrProviderRejected, resp.StatusCode, string(body))
		c.logger.Error(ctx, "voximplant rejected the call", err)
		return err
	}

	c.logger.Info(ctx, fmt.Sprintf("call started, voximplant response: %s", string(body)))
	return nil
}

func (c *Client) buildURL(call callsession.OutboundCall) (string, error) {
	variables, err := json.Marshal(scenarioVariables{
		FirstReplic: call.FirstReplic,
		CallID:      call.CallID,
		Task:        call.Task,
	})
	if err != nil {
		return "", err
	}

	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("domain", c.cfg.Domain)
	query.Set("access_token", c.cfg.AccessToken)
	query.Set("scenario_id", c.cfg.ScenarioID)
	query.Set("phone", call.Phone)
	query.Set("phone_number_id", c.cfg.PhoneNumberID)
	query.Set("call_id", call.CallID)
	query.Set("variables", string(variables))
	u.RawQuery = query.Encode()

	return u.String(), nil
}
