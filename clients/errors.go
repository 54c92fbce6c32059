package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/footyhub/footyhub/models"
)

// ErrCityNotFound is returned by the weather client when the city is unknown upstream
var ErrCityNotFound = fmt.Errorf("city not found: %w", models.ErrNotFound)

// unavailable wraps an upstream failure in models.ErrUpstreamUnavailable
func unavailable(api string, err error) error {
	return fmt.Errorf("%s: %w: %v", api, models.ErrUpstreamUnavailable, err)
}

func isStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// Text decodes either a JSON string or a JSON number into its string form.
// The team info API is loose about which one it sends.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	*t = Text(raw)
	return nil
}

func (t Text) String() string {
	return string(t)
}
