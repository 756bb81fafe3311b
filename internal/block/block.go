// Package block locates the code fragment to evaluate for a given cursor
// position: the active selection if there is one, otherwise the enclosing
// parenthesis-delimited block, otherwise the cursor's line.
package block

import "strings"

// Locate returns the fragment of text to send to the interpreter.
//
// A non-empty selection wins and is returned byte for byte. Otherwise the
// nearest enclosing (...) block around offset is returned, including both
// parentheses. If no balanced enclosing block exists, the raw text of the
// line containing offset is returned. The result is never trimmed here;
// trimming happens at dispatch so transcripts can show original formatting.
func Locate(text string, offset int, selection string) string {
	if selection != "" {
		return selection
	}

	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	if fragment, ok := enclosingBlock(text, offset); ok {
		return fragment
	}
	return lineAt(text, offset)
}

// enclosingBlock scans backward from offset for the nearest unmatched '(',
// then forward from there until the depth returns to zero. Closing parens
// seen while scanning backward are counted so that only a truly unmatched
// '(' qualifies as the block start.
func enclosingBlock(text string, offset int) (string, bool) {
	start := -1
	closed := 0
	for i := offset - 1; i >= 0; i-- {
		switch text[i] {
		case ')':
			closed++
		case '(':
			if closed == 0 {
				start = i
			} else {
				closed--
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	for j := start; j < len(text); j++ {
		switch text[j] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return text[start : j+1], true
		}
	}
	// Opened but never closed: fall back to the line.
	return "", false
}

// lineAt returns the raw text of the line containing offset, without the
// trailing newline.
func lineAt(text string, offset int) string {
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : offset+end]
}
