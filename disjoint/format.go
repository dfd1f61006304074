package disjoint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the groups like "(0,3,5) (1) (2) (4,6,7,8) (9)".
func (d *DisjointSet) String() string {
	return formatGroups(d.Groups())
}

// Print writes String() followed by a newline.
func (d *DisjointSet) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, d.String())
	return err
}

func formatGroups(groups []Group) string {
	sb := strings.Builder{}
	for i, g := range groups {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		for j, m := range g.Members {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(m))
		}
		sb.WriteByte(')')
	}
	return sb.String()
}
