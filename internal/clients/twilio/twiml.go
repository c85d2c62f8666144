package twilio

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/twilio/twilio-go/twiml"
)

const (
	GatherPath = "/twilio/gather"
	StatusPath = "/twilio/status"
)

// Dialogue renders the TwiML for the speech gather loop. Each prompt is said
// inside a speech Gather that posts the recognised text back to GatherPath;
// the trailing Redirect sends silence to the same place so the call never
// drops out of the loop.
type Dialogue struct {
	PublicBaseURL string
	Language      string
}

func (d Dialogue) GatherURL(callID string) string {
	return d.callbackURL(GatherPath, callID)
}

func (d Dialogue) StatusURL(callID string) string {
	return d.callbackURL(StatusPath, callID)
}

// Prompt says text and waits for the caller's answer.
func (d Dialogue) Prompt(callID, text string) (string, error) {
	action := d.GatherURL(callID)
	say := &twiml.VoiceSay{
		Message:  text,
		Language: d.Language,
	}
	gather := &twiml.VoiceGather{
		Input:         "speech",
		Action:        action,
		Method:        "POST",
		Language:      d.Language,
		SpeechTimeout: "auto",
		InnerElements: []twiml.Element{say},
	}
	redirect := &twiml.VoiceRedirect{
		Url:    action,
		Method: "POST",
	}
	return render(gather, redirect)
}

// Goodbye says text, if any, and hangs up.
func (d Dialogue) Goodbye(text string) (string, error) {
	var elements []twiml.Element
	if text != "" {
		elements = append(elements, &twiml.VoiceSay{Message: text, Language: d.Language})
	}
	elements = append(elements, &twiml.VoiceHangup{})
	return render(elements...)
}

func (d Dialogue) callbackURL(path, callID string) string {
	return fmt.Sprintf("%s%s?call_id=%s", strings.TrimRight(d.PublicBaseURL, "/"), path, url.QueryEscape(callID))
}

func render(elements ...twiml.Element) (string, error) {
	doc, err := twiml.Voice(elements)
	if err != nil {
		return "", fmt.Errorf("failed to render twiml: %w", err)
	}
	return doc, nil
}
