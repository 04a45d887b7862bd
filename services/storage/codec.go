package storage

import (
	"encoding/json"
	"fmt"
)

// Codec turns envelopes into stored bytes and back.
// With a passphrase the JSON is sealed before it reaches the backend.
type Codec struct {
	key []byte
}

// NewCodec returns a codec; an empty passphrase stores plain JSON.
func NewCodec(passphrase string) Codec {
	if passphrase == "" {
		return Codec{}
	}
	return Codec{key: deriveKey(passphrase)}
}

func (c Codec) Encode(env Envelope) ([]byte, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft envelope: %w", err)
	}
	if c.key == nil {
		return raw, nil
	}
	return seal(c.key, raw)
}

// Decode returns ErrMalformedDraft for anything that is not a readable envelope.
func (c Codec) Decode(data []byte) (*Envelope, error) {
	raw := data
	if c.key != nil {
		var err error
		raw, err = open(c.key, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDraft, err)
		}
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDraft, err)
	}
	if env.Timestamp <= 0 {
		return nil, fmt.Errorf("%w: missing timestamp", ErrMalformedDraft)
	}
	if env.Data.Errors == nil {
		env.Data.Errors = map[string]string{}
	}
	return &env, nil
}
