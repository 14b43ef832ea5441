package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Payloads published on the in-process
// bus already hold T; payloads replayed from the dead-letter file arrive as
// generic JSON maps and are re-decoded.
func DecodePayload[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode payload %T: %w", payload, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload into %T: %w", out, err)
	}
	return out, nil
}
