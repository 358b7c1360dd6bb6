package domain

import "errors"

// ErrInventoryFull is returned when committing a group beyond MaxGroups.
var ErrInventoryFull = errors.New("inventory full")

// ErrNoGroups is returned when a roll is requested with no configured groups.
var ErrNoGroups = errors.New("no dice groups configured")

// ErrInvalidKind is returned when a die label does not match any kind.
var ErrInvalidKind = errors.New("invalid die kind")

// ErrInvalidCount is returned when a dice count is outside [1, MaxDicePerGroup].
var ErrInvalidCount = errors.New("invalid dice count")

// ErrQuickRollActive is returned when a quick roll is requested while one is running.
var ErrQuickRollActive = errors.New("quick roll already active")

// ErrSnapshotNotFound is returned when a stashed inventory cannot be found.
var ErrSnapshotNotFound = errors.New("snapshot not found")
