package carenet

// Package carenet builds the admin "care circle" view: guardians and elders
// as vertices, linked by guardianship and by scheduled visits. Connected
// components are the circles a coordinator reasons about; elders outside any
// visit edge are the ones nobody has scheduled for.

import (
	"slices"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/eapache/queue"

	"github.com/amparo-care/amparo/elders"
	"github.com/amparo-care/amparo/users"
	"github.com/amparo-care/amparo/visits"
)

const (
	KindGuardian = "guardian"
	KindElder    = "elder"
)

type Member struct {
	ID   string
	Name string
	Kind string
}

func (m Member) key() string {
	return m.Kind + ":" + m.ID
}

type Circle struct {
	Members []Member
	// Visits counts scheduled visits between members of this circle.
	Visits int
}

type Reporter struct {
	graph         graph.Graph[string, Member]
	members       []Member
	visitsByElder map[string]int
}

func NewReporter(visitList []visits.Visit, guardians []users.User, elderList []elders.Elder) *Reporter {
	r := &Reporter{
		graph:         graph.New(Member.key),
		visitsByElder: map[string]int{},
	}

	for _, g := range guardians {
		r.members = append(r.members, Member{ID: g.ID, Name: g.Name, Kind: KindGuardian})
	}
	for _, e := range elderList {
		r.members = append(r.members, Member{ID: e.ID, Name: e.Name, Kind: KindElder})
	}

	for _, m := range r.members {
		_ = r.graph.AddVertex(m)
	}
	for _, e := range elderList {
		if e.GuardianID != "" {
			r.addEdge(guardianKey(e.GuardianID), elderKey(e.ID))
		}
	}
	for _, v := range visitList {
		if _, err := r.graph.Vertex(elderKey(v.ElderID)); err == nil {
			r.visitsByElder[elderKey(v.ElderID)]++
		}
		r.addEdge(guardianKey(v.GuardianID), elderKey(v.ElderID))
	}

	return r
}

// Circles returns the connected components, members sorted by kind then name
// so the report is deterministic.
func (r *Reporter) Circles() ([]Circle, error) {
	adjacencyMap, err := r.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(adjacencyMap))
	for key := range adjacencyMap {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	visited := map[string]struct{}{}
	circles := make([]Circle, 0)
	for _, key := range keys {
		if _, ok := visited[key]; ok {
			continue
		}

		circle := Circle{}
		q := queue.New()
		q.Add(key)
		visited[key] = struct{}{}
		for q.Length() != 0 {
			current := q.Remove().(string)
			member, err := r.graph.Vertex(current)
			if err != nil {
				return nil, err
			}
			circle.Members = append(circle.Members, member)
			circle.Visits += r.visitsByElder[current]

			for adjacent := range adjacencyMap[current] {
				if _, ok := visited[adjacent]; ok {
					continue
				}
				visited[adjacent] = struct{}{}
				q.Add(adjacent)
			}
		}

		sortMembers(circle.Members)
		circles = append(circles, circle)
	}
	return circles, nil
}

// UnvisitedElders lists elders without a single scheduled visit.
func (r *Reporter) UnvisitedElders() []Member {
	unvisited := make([]Member, 0)
	for _, m := range r.members {
		if m.Kind != KindElder {
			continue
		}
		if r.visitsByElder[elderKey(m.ID)] == 0 {
			unvisited = append(unvisited, m)
		}
	}
	sortMembers(unvisited)
	return unvisited
}

// Duplicate edges and edges with a dangling endpoint are ignored; a visit
// with a broken reference still renders in the list views, it just cannot
// contribute to the network.
func (r *Reporter) addEdge(from, to string) {
	_ = r.graph.AddEdge(from, to)
}

func guardianKey(id string) string {
	return KindGuardian + ":" + id
}

func elderKey(id string) string {
	return KindElder + ":" + id
}

func sortMembers(members []Member) {
	slices.SortFunc(members, func(a, b Member) int {
		if a.Kind != b.Kind {
			return strings.Compare(a.Kind, b.Kind)
		}
		return strings.Compare(a.Name, b.Name)
	})
}
