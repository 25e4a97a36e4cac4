// Package session groups capture records by playback session.
//
// The grouping is informational: latency extraction runs over the whole
// capture in file order and does not consult it.
package session

import "github.com/lunara-app/diagcompare/pkg/parser"

// Grouping maps session ids to their records in file order.
type Grouping struct {
	ids      []string
	sessions map[string][]*parser.Record
}

// Group buckets records by Record.SessionID. Records without an id land
// under parser.UnknownSession.
func Group(records []*parser.Record) *Grouping {
	g := &Grouping{sessions: make(map[string][]*parser.Record)}
	for _, rec := range records {
		id := rec.SessionID()
		if _, seen := g.sessions[id]; !seen {
			g.ids = append(g.ids, id)
		}
		g.sessions[id] = append(g.sessions[id], rec)
	}
	return g
}

// Len returns the number of distinct sessions.
func (g *Grouping) Len() int {
	return len(g.ids)
}

// IDs returns the session ids in order of first appearance.
func (g *Grouping) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// Records returns the records of one session, or nil if unknown.
func (g *Grouping) Records(id string) []*parser.Record {
	return g.sessions[id]
}
