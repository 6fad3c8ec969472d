package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/commitsearch/internal/search"
)

// FormatLogMarkdown formats a result log as a markdown document for the persistent view.
func FormatLogMarkdown(searchText string, searchBy search.Dimension, log *search.Log, label string) string {
	var sb strings.Builder

	title := label
	if title == "" {
		title = "Commit search"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if searchText != "" {
		fmt.Fprintf(&sb, "Searching **%s** for `%s`\n\n", searchBy, searchText)
	}

	if log == nil {
		sb.WriteString("_No results._\n")
		return sb.String()
	}
	if log.Repo != "" {
		fmt.Fprintf(&sb, "Repository: `%s`\n\n", log.Repo)
	}
	if len(log.Commits) == 0 {
		sb.WriteString("_No commits found._\n")
		return sb.String()
	}

	sb.WriteString("| Commit | Author | Date | Summary |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, c := range log.Commits {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n",
			c.ShortSha(),
			escapeCell(c.Author),
			c.Date.Format("2006-01-02 15:04"),
			escapeCell(c.Summary),
		)
	}

	if log.Truncated {
		fmt.Fprintf(&sb, "\n_Showing the first %d commits._\n", log.MaxCount)
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// CommitLabel is the one-line picker label of a commit.
func CommitLabel(c search.Commit) string {
	return fmt.Sprintf("%s %s", c.ShortSha(), c.Summary)
}

// CommitDetail is the muted suffix shown next to a commit label.
func CommitDetail(c search.Commit) string {
	return fmt.Sprintf("%s, %s", c.Author, c.Date.Format("2006-01-02"))
}
