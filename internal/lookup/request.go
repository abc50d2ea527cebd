package lookup

import (
	"fmt"
	"net/url"

	"github.com/ManuGH/lookupbot/internal/identifier"
)

// Request is one outbound lookup, fixed before it is sent.
type Request struct {
	Identifier identifier.Identifier
	Endpoint   string
}

// NewRequest resolves the endpoint for id. Unknown identifiers have none.
func NewRequest(cfg Config, id identifier.Identifier) (Request, error) {
	switch id.Kind {
	case identifier.KindPhone:
		return Request{Identifier: id, Endpoint: cfg.PhoneBaseURL + id.Value}, nil
	case identifier.KindNationalID:
		u, err := url.Parse(cfg.NationalIDBaseURL)
		if err != nil {
			return Request{}, fmt.Errorf("national id base url: %w", err)
		}
		q := u.Query()
		q.Set("aadhaar", id.Value)
		q.Set("key", cfg.NationalIDKey)
		u.RawQuery = q.Encode()
		return Request{Identifier: id, Endpoint: u.String()}, nil
	default:
		return Request{}, ErrUnsupportedKind
	}
}

// host returns the endpoint host for logs and spans; query strings carry
// the API key and identifier and are never logged.
func (r Request) host() string {
	u, err := url.Parse(r.Endpoint)
	if err != nil {
		return ""
	}
	return u.Host
}
