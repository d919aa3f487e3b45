package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/store"
	"github.com/dmitrijs2005/gophnotes/internal/models"
)

var errUnknownNote = errors.New("no note with this id")

func (a *App) List(ctx context.Context) error {
	id, _ := a.store.EditingID()
	renderNotes(a.out, a.store.VisibleNotes(), id)
	return nil
}

// New drops any edit session and starts a fresh draft for a create.
func (a *App) New(ctx context.Context) error {
	a.store.CancelEdit()
	a.draft = a.draft.Cleared()
	printSuccess(a.out, "New note started, use 'save' to fill it in")
	return nil
}

func (a *App) Edit(ctx context.Context, id string) error {
	note, ok := a.findNote(id)
	if !ok {
		a.reportError(ctx, "edit", errUnknownNote)
		return errUnknownNote
	}

	draft, ok := a.store.BeginEdit(note)
	if !ok {
		a.reportError(ctx, "edit", errUnknownNote)
		return errUnknownNote
	}
	a.draft = draft
	printSuccess(a.out, fmt.Sprintf("Editing note %s, use 'save' to change it", id))
	return nil
}

// Save prompts for every field, keeping the staged value on an empty answer
// and clearing a text field on "-", and submits the result.
func (a *App) Save(ctx context.Context) error {
	draft, err := a.promptDraft()
	if err != nil {
		a.reportError(ctx, "save", err)
		return err
	}
	a.draft = draft

	res, err := a.store.Submit(ctx, draft)
	if err != nil {
		if errors.Is(err, store.ErrEditTargetGone) {
			a.draft = a.draft.Cleared()
		}
		a.reportError(ctx, "save", err)
		return err
	}

	a.draft = res.Next
	if res.Created {
		printSuccess(a.out, fmt.Sprintf("Note %s created", res.Note.ID))
	} else {
		printSuccess(a.out, fmt.Sprintf("Note %s updated", res.Note.ID))
	}
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	a.store.CancelEdit()
	a.draft = a.draft.Cleared()
	printSuccess(a.out, "Edit cancelled")
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	editingID, wasEditing := a.store.EditingID()

	if err := a.store.Delete(ctx, id); err != nil {
		a.reportError(ctx, "delete", err)
		return err
	}

	if wasEditing && editingID == id {
		a.draft = a.draft.Cleared()
	}
	printSuccess(a.out, fmt.Sprintf("Note %s deleted", id))
	return nil
}

func (a *App) Filter(ctx context.Context, value string) error {
	f, err := models.ParseFilter(value)
	if err != nil {
		a.reportError(ctx, "filter", err)
		return err
	}
	a.store.SetFilter(f)
	return a.List(ctx)
}

func (a *App) Reload(ctx context.Context) error {
	_, wasEditing := a.store.EditingID()

	if err := a.store.Load(ctx); err != nil {
		a.reportError(ctx, "reload", err)
		return err
	}

	if wasEditing {
		a.draft = a.draft.Cleared()
	}
	printSuccess(a.out, fmt.Sprintf("%d notes loaded", len(a.store.Notes())))
	return nil
}

func (a *App) findNote(id string) (models.Note, bool) {
	for _, n := range a.store.Notes() {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

func (a *App) promptDraft() (models.Draft, error) {
	d := a.draft

	fmt.Fprintf(a.out, "Press Enter to keep a value, type %q to clear it\n", clearAnswer)

	title, err := GetSimpleText(a.reader, withCurrent("Title", d.Title), a.out)
	if err != nil {
		return d, err
	}
	d.Title = applyAnswer(d.Title, title)

	description, err := GetMultiline(a.reader, withCurrent("Description", d.Description), a.out)
	if err != nil {
		return d, err
	}
	d.Description = applyAnswer(d.Description, description)

	category, err := GetSimpleText(a.reader, withCurrent("Category (Personal, Work, Other)", string(d.Category)), a.out)
	if err != nil {
		return d, err
	}
	if category != "" {
		c, err := models.ParseCategory(category)
		if err != nil {
			return d, err
		}
		d.Category = c
	}

	return d, nil
}

// clearAnswer empties a text field instead of keeping its staged value.
const clearAnswer = "-"

func applyAnswer(current, answer string) string {
	switch answer {
	case "":
		return current
	case clearAnswer:
		return ""
	default:
		return answer
	}
}

// reportError prints a user-facing message and switches to offline mode when
// the server could not be reached.
func (a *App) reportError(ctx context.Context, op string, err error) {
	a.logger.Debug(ctx, "command failed", "op", op, "error", err)

	if errors.Is(err, client.ErrUnavailable) {
		a.setMode(ModeOffline)
	}
	printError(a.out, describeError(err))
}

func describeError(err error) string {
	var se *client.ServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		return err.Error()
	case errors.Is(err, store.ErrBusy):
		return "Another operation is still running, try again when it finishes"
	case errors.Is(err, store.ErrEditTargetGone):
		return "The note being edited no longer exists, edit cancelled"
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, client.ErrNotFound):
		return "Note not found on the server, try 'reload'"
	case errors.As(err, &se):
		return fmt.Sprintf("Server error (%d): %s", se.Status, se.Message)
	default:
		return "Error: " + err.Error()
	}
}
