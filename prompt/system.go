package prompt

import (
	"fmt"

	"github.com/omghumre/ui-generator-agent/common"
)

// GetSystemPrompt builds the system message from the generation settings
func GetSystemPrompt(settings common.Settings) string {
	basePrompt := getTone(settings) + `
` + getStyle(settings) + `
- Respond with exactly one fenced code block containing the complete UI code.
- The code must be self-contained with all necessary imports included.
- The code must be complete and ready to run without modification.
- Do not add commentary before or after the code block.`
	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language for any user-visible text.", settings.Language)
	}

	return basePrompt
}

func getStyle(settings common.Settings) string {
	switch settings.Generation.Style {
	case common.StyleMinimal:
		return "- Favor a minimal, uncluttered layout with only the components the description asks for."
	case common.StylePolished:
		return "- Favor a polished, professional layout with clear visual hierarchy and helpful affordances."
	}

	return ""
}

func getTone(settings common.Settings) string {
	tone := "You are an AI agent specialized in creating user interfaces."
	if settings.Tone != "" {
		tone = settings.Tone
	}

	return tone + `
You will be given a description of a UI component, and optionally files from an existing repository for context.
Generate UI code that matches the described functionality and purpose.`
}
