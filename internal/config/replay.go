package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ReplayConfig holds settings for replaying move lists and scenario files.
type ReplayConfig struct {
	// StartFEN is the position games start from; empty means the standard
	// starting position.
	StartFEN string

	// Workers is the number of goroutines replaying scenarios; 0 means one
	// per CPU.
	Workers int

	// BufferSize is the capacity of the work queue; 0 means twice Workers.
	BufferSize int

	// StopOnInvalid ends a replay at the first rejected move.
	StopOnInvalid bool

	// FailFast skips the remaining scenarios once one fails.
	FailFast bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 0 {
		return fmt.Errorf("buffer size %d is negative: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	if r.StartFEN != "" {
		if _, err := engine.ParseFEN(r.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}
