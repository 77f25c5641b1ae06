package session

import (
	"fmt"

	"github.com/f3rmion/cpzkp/group"
)

// Lifecycle errors. All of them wrap [group.ErrInvalidArguments].
var (
	// ErrFinalized is returned when a finalized session is asked to start a
	// round or record a response.
	ErrFinalized = fmt.Errorf("%w: session is finalized", group.ErrInvalidArguments)

	// ErrNotFinalized is returned when serializing or restoring a session
	// that has not been finalized.
	ErrNotFinalized = fmt.Errorf("%w: session is not finalized", group.ErrInvalidArguments)

	// ErrUnknownRound is returned for a round index the session never assigned.
	ErrUnknownRound = fmt.Errorf("%w: unknown round", group.ErrInvalidArguments)

	// ErrResponseRecorded is returned when a round's response is recorded twice.
	ErrResponseRecorded = fmt.Errorf("%w: response already recorded", group.ErrInvalidArguments)

	// ErrNoResponse is returned when verifying a round that has no response.
	ErrNoResponse = fmt.Errorf("%w: round has no response", group.ErrInvalidArguments)
)
