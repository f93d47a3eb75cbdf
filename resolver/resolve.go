/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sourcegraph/conc/pool"

	"github.com/4hrue2kd83f/spectra-lexer/rule"
	"github.com/4hrue2kd83f/spectra-lexer/validator"
)

// Options configures resolution.
type Options struct {
	// Parallel resolves rules that share no references concurrently.
	Parallel bool
}

// Resolve computes Letters and Connections for every rule.
// Rule ids must be unique. Returns validator.Diagnostics for:
// - references to rule ids that do not exist (all of them are reported)
// - a reference cycle (the first one found, in id order)
// No rule is modified when an error is returned.
func Resolve(rules []*rule.Rule, opts Options) error {
	ruleByID := make(map[string]*rule.Rule, len(rules))
	for _, r := range rules {
		ruleByID[r.ID] = r
	}

	graph := BuildDependencyGraph(rules)
	if diags := checkTargets(rules, graph); len(diags) > 0 {
		return diags
	}

	if cycle := graph.FindCycle(); cycle != nil {
		return validator.Diagnostics{cycleDiagnostic(cycle, ruleByID)}
	}

	if !opts.Parallel {
		order, err := graph.TopologicalSort()
		if err != nil {
			return err
		}
		for _, id := range order {
			resolveRule(ruleByID[id], ruleByID)
		}
		return nil
	}

	// Every dependency of a rule lies in the rule's own component,
	// so each worker only reads letters it has written itself.
	p := pool.New()
	for _, component := range graph.Components() {
		p.Go(func() {
			for _, id := range graph.topologicalOrder(component) {
				resolveRule(ruleByID[id], ruleByID)
			}
		})
	}
	p.Wait()

	return nil
}

// checkTargets reports every reference to a rule id that is not defined.
func checkTargets(rules []*rule.Rule, graph *DependencyGraph) validator.Diagnostics {
	var diags validator.Diagnostics
	for _, r := range rules {
		for _, seg := range r.Pattern.Segments {
			if !seg.IsReference() {
				continue
			}
			if graph.Has(seg.Target) {
				continue
			}
			d := ruleDiagnostic(r, rule.ErrUnknownReferenceTarget)
			d.Message = fmt.Sprintf("no rule %q (referenced at offset %d)", seg.Target, seg.Offset)
			diags = append(diags, d)
		}
	}
	diags.Sort()
	return diags
}

func cycleDiagnostic(cycle []string, ruleByID map[string]*rule.Rule) validator.Diagnostic {
	d := ruleDiagnostic(ruleByID[cycle[0]], rule.ErrCyclicReference)
	d.Message = strings.Join(cycle, " → ")
	return d
}

func ruleDiagnostic(r *rule.Rule, kind error) validator.Diagnostic {
	return validator.Diagnostic{
		FilePath: r.FilePath,
		RuleID:   r.ID,
		Line:     int(r.Line) + 1,
		Column:   int(r.Column) + 1,
		Kind:     kind,
	}
}

// resolveRule expands a rule's pattern. Every referenced rule must already be resolved.
// Aliased references contribute their own text; the target's letters are never read.
func resolveRule(r *rule.Rule, ruleByID map[string]*rule.Rule) {
	var (
		sb    strings.Builder
		conns []rule.Connection
		pos   int
	)

	for _, seg := range r.Pattern.Segments {
		var text string
		switch seg.Kind {
		case rule.Literal:
			sb.WriteString(seg.Text)
			pos += utf8.RuneCountInString(seg.Text)
			continue
		case rule.Reference:
			child := ruleByID[seg.Target]
			if !child.Resolved {
				panic(fmt.Sprintf("resolution order violated: %q needs unresolved %q", r.ID, child.ID))
			}
			text = child.Letters
		case rule.AliasedReference:
			text = seg.Text
		}
		n := utf8.RuneCountInString(text)
		sb.WriteString(text)
		conns = append(conns, rule.Connection{
			Target: seg.Target,
			Start:  pos,
			Length: n,
		})
		pos += n
	}

	r.Letters = sb.String()
	r.Connections = conns
	r.Resolved = true
}
