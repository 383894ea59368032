package printer

import "strings"

// minFence is the shortest fence Markdown recognises.
const minFence = 3

// FenceLength returns the number of backticks needed to fence content so
// that no backtick run inside it can close the block early. The result is
// one more than the longest run, and at least 4 when the content holds an
// embedded ``` fence or a "`${" template interpolation.
func FenceLength(content string) int {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}

	base := minFence
	if strings.Contains(content, "```") || strings.Contains(content, "`${") {
		base = minFence + 1
	}

	return max(base, longest+1)
}

// Fence returns a fence of FenceLength(content) backticks.
func Fence(content string) string {
	return strings.Repeat("`", FenceLength(content))
}
