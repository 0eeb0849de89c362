package cli

import (
	"fmt"
	"strings"

	"github.com/heldtogether/traintrack/core/dataset"
)

const rootSeparator = "\n---\n"

// renderLineage draws the forest as a git-log style graph. Every root starts
// a new section; a node with several children opens one lane per extra child.
func renderLineage(roots []*dataset.LineageNode) []string {
	var lines []string
	for i, root := range roots {
		if i > 0 {
			lines = append(lines, rootSeparator)
		}
		lines = append(lines, renderLineageNodes([]*dataset.LineageNode{root}, "", true)...)
	}
	return lines
}

func renderLineageNodes(nodes []*dataset.LineageNode, prefix string, root bool) []string {
	var lines []string
	for i, n := range nodes {
		lane := strings.Repeat("| ", len(nodes)-1-i)
		if root {
			lane = ""
		}
		lines = append(lines, nodeLine(prefix+lane, n.Dataset))

		if len(n.Children) > 1 {
			fork := prefix + lane + "|" + strings.Repeat("\\ ", len(n.Children)-1)
			lines = append(lines, strings.TrimRight(fork, " "))
		}
		if len(n.Children) > 0 {
			lines = append(lines, renderLineageNodes(n.Children, prefix+lane, false)...)
		}
	}
	return lines
}

func nodeLine(indent string, ds dataset.Dataset) string {
	line := fmt.Sprintf("%s* %.8s - %s %s: %s", indent, ds.ID, ds.Name, ds.Version, ds.Description)
	return strings.TrimRight(line, " -:")
}
