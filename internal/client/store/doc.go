// Package store keeps the client's in-memory note collection consistent with
// the remote note resource.
//
// NoteStore is the single owner of the collection, the edit session and the
// category filter. Every mutation follows the same steps: validate locally,
// make exactly one remote call, and only after it succeeds apply the remote's
// answer to the collection and notify subscribers. A failed call leaves local
// state untouched and the error is returned wrapped.
//
// Only one remote call may be in flight; overlapping Load, Submit or Delete
// calls fail fast with ErrBusy instead of racing.
//
// The edit session remembers the note's ID, not its position, so reloading or
// reordering cannot retarget it. It ends on CancelEdit, a successful Submit,
// deletion of the edited note or a successful Load.
package store
