package ranking

import "strings"

const snippetLength = 200

// extractSnippet returns a window of content around the earliest
// occurrence of any term, trimmed to word boundaries with ellipses
// where the window cuts the text. Terms are matched case-insensitively;
// stems match as prefixes of their inflected forms.
func extractSnippet(content string, terms []string, maxLength int) string {
	if content == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = snippetLength
	}

	lower := strings.ToLower(content)

	firstPos := len(content)
	matchLen := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		if pos := strings.Index(lower, term); pos >= 0 && pos < firstPos {
			firstPos = pos
			matchLen = len(term)
		}
	}

	if firstPos == len(content) {
		if len(content) <= maxLength {
			return content
		}
		return content[:maxLength] + "..."
	}

	half := maxLength / 2
	start := firstPos - half
	end := firstPos + matchLen + half
	if start < 0 {
		start = 0
	}
	if end > len(content) {
		end = len(content)
	}

	// Prefer word boundaries near the window edges.
	if start > 0 {
		for i := start; i > 0 && i > start-30; i-- {
			if content[i] == ' ' || content[i] == '\n' {
				start = i + 1
				break
			}
		}
	}
	if end < len(content) {
		for i := end; i < len(content) && i < end+30; i++ {
			if content[i] == ' ' || content[i] == '\n' {
				end = i
				break
			}
		}
	}

	snippet := content[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(content) {
		snippet = snippet + "..."
	}
	return snippet
}
