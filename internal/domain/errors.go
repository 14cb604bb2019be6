package domain

import "errors"

// Domain errors.
var (
	ErrEmptyCatalog       = errors.New("crop catalog is empty")
	ErrInvalidConfig      = errors.New("invalid evaluator configuration")
	ErrInvalidCrop        = errors.New("invalid crop")
	ErrInvalidFilter      = errors.New("invalid filter expression")
	ErrCatalogParse       = errors.New("malformed crop catalog")
	ErrCatalogInvalid     = errors.New("crop catalog failed validation")
	ErrUnsupportedFormat  = errors.New("unsupported catalog format")
	ErrConfigExists       = errors.New("config file already exists")
	ErrInvalidOutputFmt   = errors.New("invalid output format")
	ErrNoExportPath       = errors.New("no export path specified")
	ErrInvalidBudgetValue = errors.New("budget must be a non-negative integer")
)
