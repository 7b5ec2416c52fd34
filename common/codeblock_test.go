package common

import "testing"

func TestExtractCodeBlockFenced(t *testing.T) {
	content := "Here is your UI:\n```python\nimport streamlit as st\nst.button('Go')\n```\nEnjoy!"

	block, found := ExtractCodeBlock(content)
	if !found {
		t.Fatal("Expected a fenced block to be found")
	}
	if block.Language != "python" {
		t.Errorf("Expected language python, got %q", block.Language)
	}
	if block.Body != "import streamlit as st\nst.button('Go')" {
		t.Errorf("Unexpected block body: %q", block.Body)
	}
}

func TestExtractCodeBlockNoFence(t *testing.T) {
	content := `<button style="color:blue">Submit</button>`

	block, found := ExtractCodeBlock(content)
	if found {
		t.Error("Expected no fence to be found")
	}
	if block.Body != content {
		t.Errorf("Expected the content unchanged, got %q", block.Body)
	}
}

func TestExtractCodeBlockFirstWins(t *testing.T) {
	content := "```html\n<p>first</p>\n```\ntext\n```css\np {}\n```"

	block, found := ExtractCodeBlock(content)
	if !found {
		t.Fatal("Expected a fenced block to be found")
	}
	if block.Language != "html" || block.Body != "<p>first</p>" {
		t.Errorf("Expected the first block, got %+v", block)
	}
}

func TestExtractCodeBlockNoLanguage(t *testing.T) {
	content := "```\nplain block\n```"

	block, found := ExtractCodeBlock(content)
	if !found {
		t.Fatal("Expected a fenced block to be found")
	}
	if block.Language != "" {
		t.Errorf("Expected empty language, got %q", block.Language)
	}
	if block.Body != "plain block" {
		t.Errorf("Unexpected block body: %q", block.Body)
	}
}

func TestExtractCodeBlockWindowsLineEndings(t *testing.T) {
	content := "```python\r\nprint('hi')\r\n```"

	block, found := ExtractCodeBlock(content)
	if !found {
		t.Fatal("Expected a fenced block to be found")
	}
	if block.Body != "print('hi')\r" && block.Body != "print('hi')" {
		t.Errorf("Unexpected block body: %q", block.Body)
	}
}
