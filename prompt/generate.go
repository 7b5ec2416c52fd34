package prompt

// GetGeneratePrompt fills the instruction template with the user's UI
// description. The template is a process-wide constant with a single
// substitution point; the description is passed through verbatim.
func GetGeneratePrompt(description string, fw Framework) string {
	return `UI description:
` + description + `

` + fw.Instructions + `

The UI should match the description's functionality and purpose.
Generate complete, runnable ` + fw.Display + ` code.

Important: Include all necessary imports and make sure the code is self-contained.
Respond with a single fenced ` + fw.FenceLanguage + ` code block.`
}
