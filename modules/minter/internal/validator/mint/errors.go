package mintvalidator

const (
	INVALID_SIGNATURE  = "Signature is invalid"
	INVALID_RECIPIENT  = "Invalid mint recipient address"
	NOT_VALID_YET      = "Request is not valid yet"
	NO_LONGER_VALID    = "Request is no longer valid"
	INVALID_UUID       = "UUID is not a valid UUID"
	UUID_REGISTERED    = "UUID already registered"
	NO_SINGLE_PAYMENT  = "Must attach exactly one denomination of payment"
	WRONG_CURRENCY     = "Payment currency does not match request currency"
	WRONG_AMOUNT       = "Payment amount does not match request price"
	INVALID_URI        = "Request URI is not a valid URL"
	WRONG_COLLECTION   = "Request collection does not match the paired collection"
	INVALID_SALE_RECIP = "Invalid primary sale recipient address"
)
