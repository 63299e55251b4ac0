package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrInvalidRange  = errors.New("sentence range is invalid")
	ErrInvalidConfig = errors.New("session configuration is invalid")
	ErrEmptyColumn   = errors.New("required language column has empty rows")
	ErrSheetNotFound = errors.New("sheet not found in workbook")
	ErrNoAudioDevice = errors.New("audio device unavailable")
)
