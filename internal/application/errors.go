package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of a sync run
var (
	ErrConfig                = errors.New("configuration error")
	ErrAuth                  = errors.New("authentication failed")
	ErrFeed                  = errors.New("catalog feed failed")
	ErrEnrichmentUnavailable = errors.New("enrichment unavailable")
	ErrFileSystem            = errors.New("file system error")
	ErrAborted               = errors.New("aborted")
)

// ConfigError represents missing or invalid configuration
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// AuthError represents a rejected catalog login
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("catalog authentication failed: %v", e.Err)
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FeedError represents a failed catalog feed call. Fatal is set for the
// active-key feed, which gates every reconciliation decision.
type FeedError struct {
	Feed  string
	Fatal bool
	Err   error
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("feed %s: %v", e.Feed, e.Err)
}

func (e *FeedError) Is(target error) bool {
	return target == ErrFeed
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// EnrichmentError represents an unreachable or unconfigured detail-link source
type EnrichmentError struct {
	Source string
	Err    error
}

func (e *EnrichmentError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("enrichment unavailable: %v", e.Err)
	}
	return fmt.Sprintf("enrichment %s unavailable: %v", e.Source, e.Err)
}

func (e *EnrichmentError) Is(target error) bool {
	return target == ErrEnrichmentUnavailable
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

// FileSystemError represents a failed delete, move, write or copy
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Is(target error) bool {
	return target == ErrFileSystem
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
