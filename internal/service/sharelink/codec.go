package sharelink

import (
	"fmt"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/opsgain/portops/internal/domain"
)

// Query parameter names form the external link contract; any consumer must
// accept exactly this set.
const (
	paramSync      = "sync"
	paramPeriod    = "period"
	paramDataHash  = "data_hash"
	paramRef       = "ref"
	paramTimestamp = "timestamp"

	linkIDLength    = 8
	timestampLayout = "20060102_150405"
)

type periodPayload struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Decoded is a successfully resolved shared link.
type Decoded struct {
	Selection domain.PeriodSelection
	LinkID    string
}

// Codec translates period selections to and from URL-embeddable tokens so
// two sessions can reconstruct identical input conditions.
type Codec struct {
	baseURL     string
	fingerprint string
	now         func() time.Time
}

func NewCodec(baseURL, fingerprint string) *Codec {
	return &Codec{baseURL: baseURL, fingerprint: fingerprint, now: time.Now}
}

// Encode serializes the selection into a shareable URL and returns it with
// the generated link identifier.
func (c *Codec) Encode(selection domain.PeriodSelection) (string, string, error) {
	linkID := uuid.NewString()[:linkIDLength]

	payload, err := sonic.Marshal(periodPayload{
		Name:  selection.Label,
		Start: selection.Start.Format(domain.DateFormat),
		End:   selection.End.Format(domain.DateFormat),
	})
	if err != nil {
		return "", "", fmt.Errorf("marshal period payload: %w", err)
	}

	params := url.Values{}
	params.Set(paramSync, "true")
	params.Set(paramPeriod, string(payload))
	params.Set(paramDataHash, c.fingerprint)
	params.Set(paramRef, linkID)
	params.Set(paramTimestamp, c.now().Format(timestampLayout))

	return fmt.Sprintf("%s/?%s", c.baseURL, params.Encode()), linkID, nil
}

// Decode resolves a shared link from request query parameters. Absence of
// the sync marker is the normal fresh-session case, and a corrupted payload
// must never crash the session, so both report "no selection" rather than
// an error.
func (c *Codec) Decode(values url.Values) (*Decoded, bool) {
	if values.Get(paramSync) != "true" {
		return nil, false
	}

	raw := values.Get(paramPeriod)
	if raw == "" {
		return nil, false
	}

	var payload periodPayload
	if err := sonic.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}

	start, err := time.Parse(domain.DateFormat, payload.Start)
	if err != nil {
		return nil, false
	}
	end, err := time.Parse(domain.DateFormat, payload.End)
	if err != nil {
		return nil, false
	}
	if start.After(end) {
		return nil, false
	}

	linkID := values.Get(paramRef)
	if linkID == "" {
		linkID = "unknown"
	}

	return &Decoded{
		Selection: domain.NewPeriodSelection(payload.Name, start, end),
		LinkID:    linkID,
	}, true
}
