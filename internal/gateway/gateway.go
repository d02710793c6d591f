// Package gateway is the hard contract boundary between the external AI
// assistant and the application state. The assistant is prompted against the
// action schema returned by Schema and invokes actions by name with JSON
// arguments; the gateway decodes and validates those arguments, fills in
// defaults, and translates the action into store calls or read-only results.
//
// Decoding is all-or-nothing: a payload that cannot be decoded into its
// expected shape fails with domain.ErrParse and leaves the store untouched.
// This policy is uniform across all actions; no action degrades silently
// into partial data.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cememirsenyurt/tripilot/internal/domain"
	"github.com/cememirsenyurt/tripilot/internal/store"
)

// Gateway dispatches assistant actions onto the store.
type Gateway struct {
	store *store.Store
}

// New constructs a Gateway over the given store.
func New(st *store.Store) *Gateway {
	return &Gateway{store: st}
}

// Invoke runs the named action with the given raw JSON arguments and returns
// its result. Unknown action names fail with domain.ErrNotFound; argument
// problems fail with domain.ErrParse or domain.ErrValidation. Each action's
// store effect is applied atomically, so concurrent invocations interleave
// whole actions, never partial ones.
func (g *Gateway) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	switch name {
	case "planTrip":
		return g.planTrip(ctx, args)
	case "searchFlights":
		return g.searchFlights(ctx, args)
	case "searchHotels":
		return g.searchHotels(ctx, args)
	case "searchRestaurants":
		return g.searchRestaurants(ctx, args)
	case "addToBucketList":
		return g.addToBucketList(ctx, args)
	case "bookTrip":
		return g.bookTrip(ctx, args)
	case "createTripCard":
		return g.createTripCard(ctx, args)
	default:
		return nil, fmt.Errorf("action %q: %w", name, domain.ErrNotFound)
	}
}

// decodeArgs unmarshals the outer argument object for an action.
func decodeArgs(args json.RawMessage, dst any) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing action arguments", domain.ErrParse)
	}
	if err := json.Unmarshal(args, dst); err != nil {
		return fmt.Errorf("%w: invalid action arguments: %v", domain.ErrParse, err)
	}
	return nil
}

// decodePayload unmarshals a serialized structured-data parameter (the
// assistant supplies these as JSON text inside a string argument).
func decodePayload(payload string, dst any, what string) error {
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("%w: failed to parse %s data: %v", domain.ErrParse, what, err)
	}
	return nil
}

// required fails with ErrValidation when a required string argument is empty.
func required(name, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}
	return nil
}
