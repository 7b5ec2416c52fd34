package prompt

import "strings"

// GetImprovePrompt builds the refinement instruction from the human
// feedback. The previous code version travels separately, see
// GetPriorCodePrompt.
func GetImprovePrompt(feedback string, categories []string) string {
	prompt := `Human Feedback:
` + feedback

	if len(categories) > 0 {
		prompt += `

Aspects to improve: ` + strings.Join(categories, ", ")
	}

	prompt += `

Please improve the code based on the feedback provided.
Ensure the code is complete and ready to run.`

	return prompt
}

// GetPriorCodePrompt renders the previous code version for an improve round
func GetPriorCodePrompt(code string, fw Framework) string {
	return `Original Code:
` + "```" + fw.FenceLanguage + "\n" + code + "\n```"
}
