package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidCoordParam = "Coordinate parameters must be non-negative integers"
	ErrMsgInvalidLimitParam = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgLandCultivatedSuccess = "Land cultivated successfully"
	MsgNoMerchantRefresh     = "No merchant refresh due yet"
)
