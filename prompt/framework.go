package prompt

import "strings"

// DefaultFramework is used when a request does not name one
const DefaultFramework = "streamlit"

// Framework describes a supported UI target: the prompt instructions sent
// to the model and how its output is fenced and saved.
type Framework struct {
	Name          string `json:"name"`
	Display       string `json:"display"`
	FenceLanguage string `json:"fence_language"`
	Extension     string `json:"extension"`
	Instructions  string `json:"-"`
}

var frameworks = []Framework{
	{
		Name:          "streamlit",
		Display:       "Streamlit",
		FenceLanguage: "python",
		Extension:     "py",
		Instructions: `Create a modern, responsive Streamlit UI that includes:
1. A clean and professional layout
2. Necessary input components and forms
3. Data visualization sections if needed
4. Interactive elements and navigation
5. Error handling and user feedback

Use modern Streamlit features like st.tabs(), st.columns(), etc.`,
	},
	{
		Name:          "react",
		Display:       "React",
		FenceLanguage: "jsx",
		Extension:     "jsx",
		Instructions: `Create a modern, responsive React component that includes:
1. A clean and professional layout
2. Necessary input components and forms
3. Controlled state with React hooks
4. Interactive elements and navigation
5. Error handling and user feedback

Use functional components and hooks; export a single default component.`,
	},
	{
		Name:          "vue",
		Display:       "Vue",
		FenceLanguage: "vue",
		Extension:     "vue",
		Instructions: `Create a modern, responsive Vue single-file component that includes:
1. A clean and professional layout
2. Necessary input components and forms
3. Reactive state and computed properties
4. Interactive elements and navigation
5. Error handling and user feedback

Use the Composition API with <script setup>.`,
	},
	{
		Name:          "html",
		Display:       "HTML",
		FenceLanguage: "html",
		Extension:     "html",
		Instructions: `Create a modern, responsive HTML page that includes:
1. A clean and professional layout
2. Necessary input components and forms
3. Inline CSS styling
4. Interactive elements wired with vanilla JavaScript
5. Error handling and user feedback

Keep everything in a single HTML document.`,
	},
}

// Frameworks returns the supported target frameworks
func Frameworks() []Framework {
	out := make([]Framework, len(frameworks))
	copy(out, frameworks)
	return out
}

// LookupFramework finds a framework by name, case-insensitively
func LookupFramework(name string) (Framework, bool) {
	for _, fw := range frameworks {
		if strings.EqualFold(fw.Name, name) {
			return fw, true
		}
	}
	return Framework{}, false
}
