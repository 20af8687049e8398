package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// GenerateSession records one generation run as an append-only JSONL manifest.
// The manifest lives outside the fixture directory so the output directory
// holds nothing but the fixture files.
type GenerateSession struct {
	ID           string   // Session ID (timestamp: 2025-01-15-103045)
	SessionDir   string   // Full path to session directory
	ManifestFile *os.File // Open file handle for manifest.jsonl
	OutputDir    string   // Fixture output directory for this run
	stats        GenerateStats
}

// GenerateStats tracks statistics for a generation session
type GenerateStats struct {
	Planned int
	Created int
	Errors  int
}

// ManifestEvent represents a single event in the manifest log
type ManifestEvent struct {
	Event string `json:"event"`
	Ts    string `json:"ts"`
	Path  string `json:"path,omitempty"`
	Date  string `json:"date,omitempty"`
	Error string `json:"error,omitempty"`

	// Error details (for categorized errors)
	ErrorCategory   string `json:"error_category,omitempty"`
	ErrorSeverity   string `json:"error_severity,omitempty"`
	ErrorSuggestion string `json:"error_suggestion,omitempty"`

	// Session start/end fields
	OutputDir string `json:"output_dir,omitempty"`
	Planned   int    `json:"planned,omitempty"`
	Created   int    `json:"created,omitempty"`
	Errors    int    `json:"errors,omitempty"`
}

// NewGenerateSession creates a session directory under sessionsRoot and opens
// its manifest for append-only writes.
func NewGenerateSession(sessionsRoot, outputDir string) (*GenerateSession, error) {
	sessionID := time.Now().Format("2006-01-02-150405")
	sessionDir := filepath.Join(sessionsRoot, sessionID)

	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	manifestPath := filepath.Join(sessionDir, "manifest.jsonl")
	manifestFile, err := os.OpenFile(manifestPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest file: %w", err)
	}

	return &GenerateSession{
		ID:           sessionID,
		SessionDir:   sessionDir,
		ManifestFile: manifestFile,
		OutputDir:    outputDir,
	}, nil
}

// LogSessionStart writes the session start event to the manifest
func (s *GenerateSession) LogSessionStart(planned int, date string) error {
	s.stats.Planned = planned

	event := ManifestEvent{
		Event:     "session_start",
		Ts:        time.Now().UTC().Format(time.RFC3339),
		OutputDir: s.OutputDir,
		Date:      date,
		Planned:   planned,
	}

	return s.writeEvent(event)
}

// LogCreated logs a successfully written fixture
func (s *GenerateSession) LogCreated(path, date string) error {
	s.stats.Created++

	event := ManifestEvent{
		Event: "created",
		Ts:    time.Now().UTC().Format(time.RFC3339),
		Path:  path,
		Date:  date,
	}

	return s.writeEvent(event)
}

// LogError logs a categorized generation error
func (s *GenerateSession) LogError(path string, procErr *ProcessError) error {
	s.stats.Errors++

	event := ManifestEvent{
		Event:           "error",
		Ts:              time.Now().UTC().Format(time.RFC3339),
		Path:            path,
		Error:           procErr.OriginalErr.Error(),
		ErrorCategory:   string(procErr.Category),
		ErrorSeverity:   string(procErr.Severity),
		ErrorSuggestion: procErr.Suggestion,
	}

	return s.writeEvent(event)
}

// LogSessionEnd writes the session end event with final stats
func (s *GenerateSession) LogSessionEnd() error {
	event := ManifestEvent{
		Event:   "session_end",
		Ts:      time.Now().UTC().Format(time.RFC3339),
		Planned: s.stats.Planned,
		Created: s.stats.Created,
		Errors:  s.stats.Errors,
	}

	return s.writeEvent(event)
}

// GetStats returns the current session statistics
func (s *GenerateSession) GetStats() GenerateStats {
	return s.stats
}

// Close closes the manifest file and session
func (s *GenerateSession) Close() error {
	if s.ManifestFile != nil {
		return s.ManifestFile.Close()
	}
	return nil
}

// writeEvent writes a manifest event as a JSON line
func (s *GenerateSession) writeEvent(event ManifestEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := s.ManifestFile.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write to manifest: %w", err)
	}

	// Flush to ensure data is written
	return s.ManifestFile.Sync()
}
