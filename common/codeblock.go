package common

import (
	"regexp"
	"strings"
)

// CodeBlock is a fenced code block pulled out of a model response.
type CodeBlock struct {
	Language string
	Body     string
}

var fenceRe = regexp.MustCompile("(?s)```([A-Za-z0-9_+.-]*)[ \t]*\r?\n(.*?)```")

// ExtractCodeBlock returns the first fenced code block in the content.
// Models are asked to reply with a single fenced block, but they do not
// always comply; when no fence is found the whole content is returned
// unchanged so the caller still has something to display.
func ExtractCodeBlock(content string) (CodeBlock, bool) {
	match := fenceRe.FindStringSubmatch(content)
	if match == nil {
		return CodeBlock{Body: content}, false
	}

	return CodeBlock{
		Language: match[1],
		Body:     strings.TrimRight(match[2], "\n"),
	}, true
}
