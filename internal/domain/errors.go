package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound      = "player not found"
	ErrMsgPlayerAlreadyExists = "player already exists"

	// Coordinate errors
	ErrMsgInvalidCoordinate = "coordinate outside map bounds"

	// Land errors
	ErrMsgLandNotCultivable = "land is not cultivable"
	ErrMsgLandNotFarmland   = "land is not farmland"
	ErrMsgLandOccupied      = "land already has a crop"
	ErrMsgLandEmpty         = "no crop on this land"

	// Crop errors
	ErrMsgCropNotMature = "crop is not mature"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgMissingTool          = "required tool not in inventory"
	ErrMsgInvalidQuantity      = "quantity must be positive"

	// Merchant errors
	ErrMsgMerchantNotFound    = "merchant not found"
	ErrMsgInvalidOffer        = "invalid offer index"
	ErrMsgInsufficientPayment = "insufficient payment"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// World errors
	ErrMsgWorldAlreadyInitialized = "world already initialized"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound      = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerAlreadyExists = errors.New(ErrMsgPlayerAlreadyExists)

	// Coordinate errors
	ErrInvalidCoordinate = errors.New(ErrMsgInvalidCoordinate)

	// Land errors
	ErrLandNotCultivable = errors.New(ErrMsgLandNotCultivable)
	ErrLandNotFarmland   = errors.New(ErrMsgLandNotFarmland)
	ErrLandOccupied      = errors.New(ErrMsgLandOccupied)
	ErrLandEmpty         = errors.New(ErrMsgLandEmpty)

	// Crop errors
	ErrCropNotMature = errors.New(ErrMsgCropNotMature)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrMissingTool          = errors.New(ErrMsgMissingTool)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	// Merchant errors
	ErrMerchantNotFound    = errors.New(ErrMsgMerchantNotFound)
	ErrInvalidOffer        = errors.New(ErrMsgInvalidOffer)
	ErrInsufficientPayment = errors.New(ErrMsgInsufficientPayment)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// World errors
	ErrWorldAlreadyInitialized = errors.New(ErrMsgWorldAlreadyInitialized)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
