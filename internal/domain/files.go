package domain

import "strings"

const (
	NotFoundText    = "(not found)"
	EmptyText       = "(empty)"
	HistoryLogFile  = "command_history.log"
	StoppedTailText = "\n(stopped tail)"
)

type FileItem struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

type Listing struct {
	Path  string
	Items []FileItem
}

// Lines renders the listing the way the file manager pane shows it.
func (l Listing) Lines() string {
	if len(l.Items) == 0 {
		return EmptyText
	}

	lines := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		prefix := "     "
		if item.IsDir {
			prefix = "[DIR] "
		}
		lines = append(lines, prefix+item.Name)
	}

	return strings.Join(lines, "\n")
}

func OrEmpty(text string) string {
	if text == "" {
		return EmptyText
	}
	return text
}
