package valve

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// lineRx matches one valve description. Singular and plural tunnel wording are both accepted:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
var lineRx = regexp.MustCompile(
	`^Valve\s+(\w+)\s+has\s+flow\s+rate\s*=\s*(\d+)\s*;\s*tunnels?\s+leads?\s+to\s+valves?\s+(\w+(?:\s*,\s*\w+)*)\s*$`,
)

// Parse reads valve descriptions, one per line, and returns them in input order.
// Blank lines are skipped. The first line that does not match the format aborts
// parsing with ErrSyntax wrapped with its 1-based line number.
//
// Parse performs no graph validation; pass the records to NewGraph for that.
func Parse(r io.Reader) ([]Record, error) {
	var (
		records []Record
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := lineRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, lineNo, line)
		}
		flow, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: flow rate %q: %v", ErrSyntax, lineNo, m[2], err)
		}
		parts := strings.Split(m[3], ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		records = append(records, Record{ID: m[1], FlowRate: flow, Neighbours: parts})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("valve: read input: %w", err)
	}

	return records, nil
}

// ParseGraph is Parse followed by NewGraph.
func ParseGraph(r io.Reader) (*Graph, error) {
	records, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return NewGraph(records)
}
