package prompt

import (
	"strings"

	"github.com/omghumre/ui-generator-agent/repo"
)

// GetRepoContextPrompt renders extracted repository files as a prompt
// section with one delimited block per file.
func GetRepoContextPrompt(info repo.Info, files []repo.File) string {
	var sb strings.Builder

	sb.WriteString("Repository context:\n")
	sb.WriteString(info.String())
	sb.WriteString("\n\nRepository files:\n")

	for _, file := range files {
		sb.WriteString("\n===== FILE: " + file.Path + " =====\n")
		sb.WriteString(file.Content)
		if !strings.HasSuffix(file.Content, "\n") {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
