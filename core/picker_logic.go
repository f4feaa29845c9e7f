package core

import (
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a filterable single-select list. Items matching the query as a
// subsequence rank first; when nothing matches, items within a small edit
// distance of the query are offered instead.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
	typo     bool
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title), items: slices.Clone(items)}
	p.rebuildFiltered()
	return p
}

func (p *Picker) Title() string { return p.title }
func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }

// Approximate reports whether the current results came from the typo
// fallback rather than a subsequence match.
func (p *Picker) Approximate() bool { return p.typo }

func (p *Picker) Items() []PickerItem { return slices.Clone(p.filtered) }

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

// move shifts the cursor by delta within the filtered list and reports
// whether it moved.
func (p *Picker) move(delta int) bool {
	if len(p.filtered) == 0 {
		return false
	}
	next := min(max(p.cursor+delta, 0), len(p.filtered)-1)
	moved := next != p.cursor
	p.cursor = next
	return moved
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[min(max(p.cursor, 0), len(p.filtered)-1)], true
}

// HandleKey applies one key press. Letters always extend the query, so the
// cursor moves only with arrows and ctrl+p/ctrl+n.
func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "ctrl+p", "down", "ctrl+n":
		delta := 1
		if keyName == "up" || keyName == "ctrl+p" {
			delta = -1
		}
		if p.move(delta) {
			return PickerResult{Action: PickerActionMoved}
		}
	case "enter":
		if item, ok := p.CurrentItem(); ok {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if r := []rune(p.query); len(r) > 0 {
			p.SetQuery(string(r[:len(r)-1]))
		}
	case "space":
		p.SetQuery(p.query + " ")
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerResult{Action: PickerActionNone}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		matched, score := fuzzyMatchScore(searchText(item), q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	p.typo = false
	if len(scored) == 0 && q != "" {
		scored = typoMatches(p.items, q)
		p.typo = len(scored) > 0
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	out := make([]PickerItem, 0, len(scored))
	for _, row := range scored {
		out = append(out, row.item)
	}
	p.filtered = out

	p.cursor = max(0, min(p.cursor, len(p.filtered)-1))
}

func searchText(item PickerItem) string {
	if s := strings.TrimSpace(item.Search); s != "" {
		return s
	}
	return item.Label
}

// typoMatches keeps items having a word within maxTypoDistance edits of the
// query. Closer words score higher.
func typoMatches(items []PickerItem, query string) []scoredPickerItem {
	q := strings.ToLower(query)
	limit := maxTypoDistance(q)
	if limit == 0 {
		return nil
	}
	var out []scoredPickerItem
	for idx, item := range items {
		best := -1
		for _, word := range strings.Fields(strings.ToLower(searchText(item))) {
			d := levenshtein.ComputeDistance(q, word)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= limit {
			out = append(out, scoredPickerItem{item: item, score: limit - best, index: idx})
		}
	}
	return out
}

func maxTypoDistance(q string) int {
	n := len([]rune(q))
	switch {
	case n < 3:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
