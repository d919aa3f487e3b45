package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/models"
)

var (
	// ErrBusy rejects a remote operation while another one is in flight.
	ErrBusy = errors.New("another note operation is in progress")

	// ErrEditTargetGone is returned by Submit when the note being edited is no
	// longer in the collection. The edit session is cleared.
	ErrEditTargetGone = errors.New("edited note is no longer available")
)

// Remote is the subset of the remote note resource the store depends on.
type Remote interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot is an immutable copy of the store state handed to observers.
type Snapshot struct {
	Notes     []models.Note
	Filter    models.Filter
	EditingID string
	Loading   bool
}

// SubmitResult describes a successful Submit.
type SubmitResult struct {
	// Note is the value returned by the remote resource.
	Note models.Note
	// Created is false when an existing note was updated.
	Created bool
	// Next is the draft the form should show afterwards: text cleared,
	// category kept.
	Next models.Draft
}

type Option func(*NoteStore)

func WithLogger(l logging.Logger) Option {
	return func(s *NoteStore) { s.logger = l }
}

// WithCallTimeout bounds every remote call. Zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(s *NoteStore) { s.callTimeout = d }
}

type NoteStore struct {
	remote      Remote
	logger      logging.Logger
	callTimeout time.Duration

	mu        sync.Mutex
	notes     []models.Note
	editingID string
	editing   bool
	filter    models.Filter
	loading   bool
	busy      bool

	observers map[int]func(Snapshot)
	nextObs   int
}

func New(remote Remote, opts ...Option) *NoteStore {
	s := &NoteStore{
		remote:    remote,
		logger:    logging.NopLogger{},
		notes:     []models.Note{},
		filter:    models.FilterAll,
		observers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("module", "note_store")
	return s
}

// Load replaces the collection with the remote one. On failure the previous
// collection is kept. A successful load ends any edit session.
func (s *NoteStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.loading = true
	s.mu.Unlock()
	s.notify()

	callCtx, cancel := s.callContext(ctx)
	notes, err := s.remote.List(callCtx)
	cancel()

	s.mu.Lock()
	s.busy = false
	s.loading = false
	if err == nil {
		s.notes = slices.Clone(notes)
		if s.notes == nil {
			s.notes = []models.Note{}
		}
		s.clearEdit()
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		s.logger.Warn(ctx, "loading notes failed", "error", err)
		return fmt.Errorf("load notes: %w", err)
	}
	s.logger.Info(ctx, "notes loaded", "count", len(notes))
	return nil
}

// BeginEdit targets note for editing and returns its fields as a draft. The
// note is located by ID, or by title when it has no ID. An unknown note, or
// one stored without an ID, is a no-op and returns false. A second call
// replaces the current session.
func (s *NoteStore) BeginEdit(note models.Note) (models.Draft, bool) {
	s.mu.Lock()
	var idx int
	if note.ID != "" {
		idx = s.indexOf(note.ID)
	} else {
		idx = slices.IndexFunc(s.notes, func(n models.Note) bool { return n.Title == note.Title })
	}
	// A note without an ID cannot be updated remotely.
	if idx < 0 || s.notes[idx].ID == "" {
		s.mu.Unlock()
		return models.Draft{}, false
	}
	target := s.notes[idx]
	s.editingID = target.ID
	s.editing = true
	s.mu.Unlock()
	s.notify()

	return models.DraftOf(target), true
}

// CancelEdit ends the edit session, if any.
func (s *NoteStore) CancelEdit() {
	s.mu.Lock()
	changed := s.editing
	s.clearEdit()
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Submit validates the draft and then creates a note, or updates the note
// under edit. Local state changes only after the remote call succeeds, and
// then to the value the remote returned.
func (s *NoteStore) Submit(ctx context.Context, draft models.Draft) (SubmitResult, error) {
	if err := models.ValidateDraft(draft); err != nil {
		return SubmitResult{}, err
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return SubmitResult{}, ErrBusy
	}
	editing, editingID := s.editing, s.editingID
	var base models.Note
	if editing {
		idx := s.indexOf(editingID)
		if idx < 0 {
			s.clearEdit()
			s.mu.Unlock()
			s.notify()
			return SubmitResult{}, ErrEditTargetGone
		}
		base = s.notes[idx]
	}
	s.busy = true
	s.mu.Unlock()

	callCtx, cancel := s.callContext(ctx)
	var saved models.Note
	var err error
	if editing {
		saved, err = s.remote.Update(callCtx, draft.ApplyTo(base))
	} else {
		saved, err = s.remote.Create(callCtx, draft.Note())
	}
	cancel()

	s.mu.Lock()
	s.busy = false
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn(ctx, "saving note failed", "editing", editing, "id", editingID, "error", err)
		if editing {
			return SubmitResult{}, fmt.Errorf("update note %s: %w", editingID, err)
		}
		return SubmitResult{}, fmt.Errorf("create note: %w", err)
	}
	if editing {
		if idx := s.indexOf(editingID); idx >= 0 {
			s.notes[idx] = saved
		}
		if s.editing && s.editingID == editingID {
			s.clearEdit()
		}
	} else {
		s.notes = append(s.notes, saved)
	}
	s.mu.Unlock()
	s.notify()

	s.logger.Info(ctx, "note saved", "id", saved.ID, "created", !editing)
	return SubmitResult{Note: saved, Created: !editing, Next: draft.Cleared()}, nil
}

// Delete removes the note with the given id remotely and then locally. If it
// was being edited, the edit session ends.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	callCtx, cancel := s.callContext(ctx)
	err := s.remote.Delete(callCtx, id)
	cancel()

	s.mu.Lock()
	s.busy = false
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn(ctx, "deleting note failed", "id", id, "error", err)
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	s.notes = slices.DeleteFunc(s.notes, func(n models.Note) bool { return n.ID == id })
	if s.editing && s.editingID == id {
		s.clearEdit()
	}
	s.mu.Unlock()
	s.notify()

	s.logger.Info(ctx, "note deleted", "id", id)
	return nil
}

func (s *NoteStore) SetFilter(f models.Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	s.notify()
}

// VisibleNotes returns the notes matching the filter, newest first.
func (s *NoteStore) VisibleNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible()
}

// Notes returns a copy of the collection in server order.
func (s *NoteStore) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

func (s *NoteStore) Filter() models.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *NoteStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Busy reports whether a remote call is in flight. Presentation layers use
// it to disable the actions that would be rejected with ErrBusy.
func (s *NoteStore) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *NoteStore) EditingID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID, s.editing
}

// EditingIndex resolves the edit session to a position in Notes.
func (s *NoteStore) EditingIndex() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return -1, false
	}
	idx := s.indexOf(s.editingID)
	return idx, idx >= 0
}

// Subscribe registers fn to receive a Snapshot after every state change.
// fn runs synchronously on the goroutine that made the change and must not
// call back into mutating store methods. The returned func unsubscribes.
func (s *NoteStore) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *NoteStore) notify() {
	s.mu.Lock()
	if len(s.observers) == 0 {
		s.mu.Unlock()
		return
	}
	snap := Snapshot{
		Notes:     s.visible(),
		Filter:    s.filter,
		EditingID: s.editingID,
		Loading:   s.loading,
	}
	fns := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *NoteStore) visible() []models.Note {
	out := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if s.filter.Match(n) {
			out = append(out, n)
		}
	}
	slices.Reverse(out)
	return out
}

func (s *NoteStore) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

func (s *NoteStore) clearEdit() {
	s.editing = false
	s.editingID = ""
}

func (s *NoteStore) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout > 0 {
		return context.WithTimeout(ctx, s.callTimeout)
	}
	return context.WithCancel(ctx)
}
