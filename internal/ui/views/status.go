package views

import "fmt"

// RenderProgress renders one frame of the progress line.
func RenderProgress(frame, label string, st Styles) string {
	if label == "" {
		label = "Searching"
	}
	return st.Progress.Render(fmt.Sprintf("%s %s", frame, label))
}

// RenderError renders a one-line failure message.
func RenderError(message string, st Styles) string {
	return st.Error.Render("✘ " + message)
}
