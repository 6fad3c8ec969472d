package ui

import (
	"context"
	"fmt"
	"io"

	cmdmodels "github.com/Cyclone1070/commitsearch/internal/command/models"
	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	"github.com/Cyclone1070/commitsearch/internal/ui/models"
	"github.com/Cyclone1070/commitsearch/internal/ui/views"
	tea "github.com/charmbracelet/bubbletea"
)

const searchPrompt = "Search commits"

// UI implements the interactive collaborators of the search flow on a terminal:
// the results picker, the repository chooser, the search prompt and error messages.
type UI struct {
	out    io.Writer
	styles views.Styles
	run    ProgramRunner
}

// NewUI creates a UI that runs Bubble Tea programs on in/out and writes messages to out.
func NewUI(in io.Reader, out io.Writer, styles views.Styles) *UI {
	return &UI{
		out:    out,
		styles: styles,
		run: func(ctx context.Context, model tea.Model) (tea.Model, error) {
			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(in),
				tea.WithOutput(out),
			)
			return p.Run()
		},
	}
}

// Pick shows the results picker. A commit or continuation row ends the pick;
// escape or a cancelled progress scope dismisses it.
func (u *UI) Pick(ctx context.Context, req orchmodels.PickRequest) (orchmodels.Selection, bool, error) {
	var done <-chan struct{}
	if req.Progress != nil {
		if s, ok := req.Progress.(Suspender); ok {
			s.Suspend()
		}
		done = req.Progress.Done()
	}

	final, err := u.run(ctx, newPickerModel(req.Label, BuildPickerItems(req), u.styles, done))
	if err != nil {
		return orchmodels.Selection{}, false, fmt.Errorf("failed to run picker: %w", err)
	}

	item, ok := final.(pickerModel).chosen()
	if !ok {
		return orchmodels.Selection{}, false, nil
	}
	switch item.Kind {
	case models.ItemCommit:
		return orchmodels.Selection{Commit: item.Commit}, true, nil
	case models.ItemContinuation:
		return orchmodels.Selection{Continuation: item.Continuation}, true, nil
	default:
		return orchmodels.Selection{}, false, nil
	}
}

// BuildPickerItems lays out the picker rows: go back first, then the commits,
// then the show-all and show-in-view actions when they are offered.
func BuildPickerItems(req orchmodels.PickRequest) []models.Item {
	var items []models.Item
	addContinuation := func(label, detail string, c *cmdmodels.Continuation) {
		if c != nil {
			items = append(items, models.Item{Kind: models.ItemContinuation, Label: label, Detail: detail, Continuation: c})
		}
	}

	addContinuation("← Back", "edit the search", req.GoBack)

	switch {
	case req.Log == nil:
		items = append(items, models.Item{Kind: models.ItemInfo, Label: "No results"})
	case len(req.Log.Commits) == 0:
		items = append(items, models.Item{Kind: models.ItemInfo, Label: fmt.Sprintf("No commits matching %s", req.Search)})
	default:
		for i := range req.Log.Commits {
			c := req.Log.Commits[i]
			items = append(items, models.Item{
				Kind:   models.ItemCommit,
				Label:  views.CommitLabel(c),
				Detail: views.CommitDetail(c),
				Commit: &c,
			})
		}
	}

	detail := ""
	if req.Log != nil {
		detail = fmt.Sprintf("only the first %d are shown", req.Log.MaxCount)
	}
	addContinuation("Show all commits", detail, req.ShowAll)
	addContinuation("Open results in view", "", req.ShowInView)
	return items
}

// Choose implements git.Chooser with the same list picker.
func (u *UI) Choose(ctx context.Context, prompt string, options []string) (string, bool, error) {
	items := make([]models.Item, 0, len(options))
	for _, o := range options {
		items = append(items, models.Item{Kind: models.ItemOption, Label: o, Option: o})
	}

	final, err := u.run(ctx, newPickerModel(prompt, items, u.styles, nil))
	if err != nil {
		return "", false, fmt.Errorf("failed to run chooser: %w", err)
	}
	item, ok := final.(pickerModel).chosen()
	if !ok {
		return "", false, nil
	}
	return item.Option, true, nil
}

// ReadSearch prompts for the raw search text, prefilled with prefill.
func (u *UI) ReadSearch(ctx context.Context, prefill string) (string, bool, error) {
	final, err := u.run(ctx, newInputModel(searchPrompt, prefill, u.styles))
	if err != nil {
		return "", false, fmt.Errorf("failed to read search: %w", err)
	}
	m := final.(inputModel)
	if !m.state.Submitted {
		return "", false, nil
	}
	return m.state.Input.Value(), true, nil
}

// ShowError writes a one-line failure message.
func (u *UI) ShowError(_ orchmodels.ErrorKind, message string) {
	fmt.Fprintln(u.out, views.RenderError(message, u.styles))
}
