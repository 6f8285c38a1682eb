// Package database implements the embedded persistence engine: one JSON
// document on disk holding every collection, rewritten wholesale on each
// mutation. It stands in for the document store and relational API the
// original site talked to, so the layers above it keep the same contract
// without a network backend.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"gymrat/models"
)

// Record is a single untyped row of a collection, as decoded from JSON.
type Record = map[string]any

// Collection names recognised by the store. Unknown names read as empty.
const (
	CollectionUsers           = "users"
	CollectionContactMessages = "contact_messages"
	CollectionBookings        = "bookings"
	CollectionTrainers        = "trainers"
	CollectionClasses         = "classes"
	CollectionPayments        = "payments"
)

// Document is the full persisted store: the "users" collection is keyed by
// member id, every other collection is an append-only array.
type Document struct {
	Users           map[string]Record `json:"users"`
	ContactMessages []Record          `json:"contact_messages"`
	Bookings        []Record          `json:"bookings"`
	Trainers        []Record          `json:"trainers"`
	Classes         []Record          `json:"classes"`
	Payments        []Record          `json:"payments"`
}

// Records returns the named collection as a flat slice. Keyed collections
// are flattened with the key exposed as an "id" field, matching how the
// original document API listed them. Unknown names return nil.
func (d *Document) Records(name string) []Record {
	switch name {
	case CollectionUsers:
		out := make([]Record, 0, len(d.Users))
		for id, rec := range d.Users {
			flat := Record{"id": id}
			for k, v := range rec {
				flat[k] = v
			}
			out = append(out, flat)
		}
		return out
	case CollectionContactMessages:
		return d.ContactMessages
	case CollectionBookings:
		return d.Bookings
	case CollectionTrainers:
		return d.Trainers
	case CollectionClasses:
		return d.Classes
	case CollectionPayments:
		return d.Payments
	}
	return nil
}

// Append adds a record to an array-valued collection. It reports false for
// unknown names and for the keyed "users" collection.
func (d *Document) Append(name string, rec Record) bool {
	switch name {
	case CollectionContactMessages:
		d.ContactMessages = append(d.ContactMessages, rec)
	case CollectionBookings:
		d.Bookings = append(d.Bookings, rec)
	case CollectionTrainers:
		d.Trainers = append(d.Trainers, rec)
	case CollectionClasses:
		d.Classes = append(d.Classes, rec)
	case CollectionPayments:
		d.Payments = append(d.Payments, rec)
	default:
		return false
	}
	return true
}

// Store persists the document under a fixed path, and the current session
// identity under a second fixed path. All access is whole-document
// read-modify-write under a single mutex; two concurrent processes writing
// the same files are last-write-wins, same as the storage it emulates.
type Store struct {
	dataPath    string
	sessionPath string
	latency     time.Duration
	mu          sync.Mutex
}

// Open returns a store over the given data and session files. The files are
// created lazily: the data file is seeded on first load. A non-zero latency
// is applied to every operation to emulate a remote backend.
func Open(dataPath, sessionPath string, latency time.Duration) *Store {
	return &Store{dataPath: dataPath, sessionPath: sessionPath, latency: latency}
}

// wait applies the configured artificial latency, aborting early if the
// context is cancelled.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Load returns the current document, creating and persisting seed data if
// the data file does not exist yet.
func (s *Store) Load(ctx context.Context) (*Document, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Document, error) {
	raw, err := os.ReadFile(s.dataPath)
	if os.IsNotExist(err) {
		if err := s.save(seedDocument(time.Now())); err != nil {
			return nil, err
		}
		// Re-read so the first load sees the same JSON-normalised value
		// types as every later one.
		raw, err = os.ReadFile(s.dataPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", s.dataPath, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode store file %s: %w", s.dataPath, err)
	}
	if doc.Users == nil {
		doc.Users = map[string]Record{}
	}
	return &doc, nil
}

// Save serializes the full document, replacing any prior content. There are
// no partial writes and no versioning.
func (s *Store) Save(ctx context.Context, doc *Document) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *Store) save(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}
	if err := os.WriteFile(s.dataPath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.dataPath, err)
	}
	return nil
}

// Update runs fn against a freshly loaded document and persists the result,
// all under the store lock. If fn returns an error nothing is written. This
// is the single read-modify-write cycle invariant checks rely on.
func (s *Store) Update(ctx context.Context, fn func(*Document) error) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// LoadSession returns the persisted session identity, or nil when no member
// is signed in.
func (s *Store) LoadSession(ctx context.Context) (*models.Identity, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.sessionPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", s.sessionPath, err)
	}
	var ident models.Identity
	if err := json.Unmarshal(raw, &ident); err != nil {
		return nil, fmt.Errorf("failed to decode session file %s: %w", s.sessionPath, err)
	}
	return &ident, nil
}

// SaveSession persists the given identity as the active session.
func (s *Store) SaveSession(ctx context.Context, ident *models.Identity) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.sessionPath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.sessionPath, err)
	}
	return nil
}

// ClearSession removes the persisted session, if any.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.sessionPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", s.sessionPath, err)
	}
	return nil
}

// ToRecord converts a typed model value into an untyped record through its
// JSON form, so stored data always has canonical JSON types.
func ToRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}

// DecodeRecord converts an untyped record back into a typed model value.
// Fields the target type does not declare are dropped.
func DecodeRecord(rec Record, v any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}
