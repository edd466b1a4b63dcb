package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// Validation is returned for malformed input: bad addresses, URLs,
	// length bounds, payment or currency mismatches.
	Validation = ErrorKind("Validation Error")

	// Unauthorized is returned when the caller lacks the required privilege.
	Unauthorized = ErrorKind("Unauthorized")

	// Conflict is returned when an item already exists where the invariant
	// requires it not to (consumed nonce, claimed token, duplicate admin).
	Conflict = ErrorKind("Conflict")

	// MintingPaused is returned when minting is administratively paused.
	// Distinct from Validation so callers can tell "retry later" from
	// "malformed forever".
	MintingPaused = ErrorKind("Minting Paused")

	// QueryFailure is returned when a cross-contract query errors or its
	// result cannot be decoded.
	QueryFailure = ErrorKind("Query Failure")

	Unsupported        = ErrorKind("Unsupported")
	SomethingWentWrong = ErrorKind("Something went wrong")
	OverflowUint64     = ErrorKind("overflow uint64")
	OverflowUint128    = ErrorKind("overflow uint128")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
