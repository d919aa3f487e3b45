package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophnotes/internal/models"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

const descriptionWidth = 48

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// isTerminal is a test seam; colours and box drawing are only used on a tty.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintln(w, msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintln(w, msg)
}

var categoryColors = map[models.Category]text.Colors{
	models.CategoryPersonal: {text.FgHiBlue},
	models.CategoryWork:     {text.FgHiYellow},
	models.CategoryOther:    {text.FgHiMagenta},
}

// renderNotes writes notes as a table in the order given. The row of the note
// being edited is marked with '*'.
func renderNotes(w io.Writer, notes []models.Note, editingID string) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes")
		return
	}

	tty := isTerminal(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	if tty {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: descriptionWidth},
	})

	header := table.Row{"", "ID", "Title", "Description", "Category"}
	if tty {
		for i, h := range header {
			header[i] = text.FgGreen.Sprint(h)
		}
	}
	t.AppendHeader(header)

	for _, n := range notes {
		marker := ""
		if editingID != "" && n.ID == editingID {
			marker = "*"
		}

		category := string(n.Category)
		if c, ok := categoryColors[n.Category]; ok && tty {
			category = c.Sprint(category)
		}

		t.AppendRow(table.Row{marker, n.ID, n.Title, n.Description, category})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d notes", len(notes))})

	t.Render()
}
