package checker

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/i18nscan/rule"
	"github.com/viant/i18nscan/syntax"
)

// Engines selects which finding groups a walker produces
type Engines struct {
	Markup bool
	Script bool
}

// AllEngines enables every engine
var AllEngines = Engines{Markup: true, Script: true}

// Enabled returns true if the engine is selected
func (e Engines) Enabled(engine Engine) bool {
	switch engine {
	case Markup:
		return e.Markup
	case Script:
		return e.Script
	}
	return false
}

// Walker traverses a parsed file and dispatches relevant nodes to the classifier
type Walker struct {
	classifier *Classifier
	engines    Engines
}

// NewWalker creates a walker over a compiled configuration
func NewWalker(config *rule.Config, engines Engines) *Walker {
	return &Walker{classifier: NewClassifier(config), engines: engines}
}

type walkState struct {
	file     *syntax.File
	claimed  map[uint32]bool
	findings []*Finding
}

// Walk returns the findings of a file ordered by position
func (w *Walker) Walk(f *syntax.File) []*Finding {
	state := &walkState{file: f, claimed: map[uint32]bool{}}
	w.walk(f.Root, state)
	sort.SliceStable(state.findings, func(i, j int) bool {
		a, b := state.findings[i], state.findings[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return state.findings
}

func (w *Walker) walk(n *sitter.Node, state *walkState) {
	if n == nil {
		return
	}
	switch syntax.KindOf(n) {
	case syntax.MarkupElement:
		if w.engines.Markup {
			state.findings = append(state.findings, w.classifier.CheckMarkupAttributes(state.file, n)...)
			state.findings = append(state.findings, w.classifier.CheckMarkupText(state.file, n)...)
		}
	case syntax.MarkupSelfClosing:
		if w.engines.Markup {
			state.findings = append(state.findings, w.classifier.CheckMarkupAttributes(state.file, n)...)
		}
	case syntax.CallExpression:
		if w.engines.Script {
			findings, claimed := w.classifier.CheckCall(state.file, n)
			state.findings = append(state.findings, findings...)
			for _, pair := range claimed {
				state.claimed[pair.StartByte()] = true
			}
		}
	case syntax.ObjectProperty:
		if w.engines.Script && !state.claimed[n.StartByte()] {
			state.findings = append(state.findings, w.classifier.CheckProperty(state.file, n)...)
		}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		w.walk(n.Child(i), state)
	}
}
