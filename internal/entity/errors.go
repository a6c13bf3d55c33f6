package entity

import "errors"

var (
	// Required resources: failing these fails the whole request
	ErrPlayerInfoUnavailable = errors.New("failed to fetch player info")
	ErrBackgroundUnavailable = errors.New("failed to fetch background image")

	// Character-info errors
	ErrSkillNotFound            = errors.New("skill ID not found")
	ErrCharacterImageMissing    = errors.New("png image not found in character response")
	ErrCharacterInfoUnavailable = errors.New("failed to get character info")
)
