package models

import "github.com/pkg/errors"

// Sentinel errors shared by the public and private clients. Callers match
// them with errors.Cause.
var (
	// ErrInvalidMarketType is returned for a market type outside
	// spot/future/all (listing) or spot/future (symbol resolution).
	ErrInvalidMarketType = errors.New("invalid market type")

	// ErrInvalidAction is returned for an order action other than buy/sell.
	ErrInvalidAction = errors.New("invalid order action")

	// ErrInvalidAmount is returned for a non-positive requested amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrFuturesNotSupported is returned when a currency pair is listed on
	// the future market; the service trades spot markets only.
	ErrFuturesNotSupported = errors.New("currency pair belongs to future market, service is only available for spot markets")

	// ErrMarketNotFound is returned when neither a pair nor its reverse is a
	// listed spot market.
	ErrMarketNotFound = errors.New("market not found")

	// ErrInsufficientDepth is returned when the requested amount exceeds the
	// cumulative liquidity within the fetched book depth.
	ErrInsufficientDepth = errors.New("amount is not offset by order book within fetched depth")

	// ErrEmptyBoard is returned when the relevant book side has no liquidity
	// at all, which would otherwise make the weighted price NaN.
	ErrEmptyBoard = errors.New("order book side is empty")

	// ErrAmbiguousSymbol is returned when two distinct listed markets
	// normalize to the same concatenated symbol.
	ErrAmbiguousSymbol = errors.New("distinct markets normalize to the same symbol")

	// ErrRemote is returned when the exchange answers success=false; the
	// wrapping message carries the exchange's error text verbatim.
	ErrRemote = errors.New("exchange returned failure")
)
