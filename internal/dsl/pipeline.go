package dsl

import (
	"fmt"

	"github.com/bstrimzi/battlefactory/internal/battle"
)

// Op is one atomic step of an effect composition. InputStage is the
// earliest pipeline stage at which the op may run; OutputStage is the
// stage the pipeline advances to once it runs. Domains declares which
// state scopes the op touches, checked once at registration time against
// the composition's declared domain budget.
type Op struct {
	Name        string
	InputStage  Stage
	OutputStage Stage
	Domains     DomainMask
	Run         func(ctx *battle.Context)
}

// Node is a composable unit of an effect: either a single Op or a
// composite built from Seq/Match/Repeat/RepeatWhile. Composites flatten
// to a linear op sequence at registration time — the runtime pipeline
// never branches, it only decides, per node, whether to run it.
type Node interface {
	// flatten appends this node's runtime steps to steps and returns the
	// updated slice. Each step closes over any conditional logic so the
	// flattened pipeline is still a single straight list of steps to the
	// Pipeline executor.
	flatten(steps []step) []step
}

type step struct {
	op   Op
	cond func(ctx *battle.Context) bool
}

// flatten lets a bare Op stand in as a Node wherever a composition needs
// a single step, so Seq/Match/append can take an op's constructor result
// directly without an explicit wrapper.
func (o Op) flatten(steps []step) []step {
	return append(steps, step{op: o, cond: nil})
}

// opNode wraps a single Op as a Node. Kept alongside Op's own flatten
// method for call sites (and tests) that prefer composing through Leaf.
type opNode struct{ op Op }

func (n opNode) flatten(steps []step) []step {
	return append(steps, step{op: n.op, cond: nil})
}

// Leaf lifts a single Op into a Node.
func Leaf(op Op) Node { return opNode{op: op} }

// seqNode runs its children in order, unconditionally.
type seqNode struct{ children []Node }

// Seq composes nodes to run strictly in order.
func Seq(nodes ...Node) Node { return seqNode{children: nodes} }

func (n seqNode) flatten(steps []step) []step {
	for _, c := range n.children {
		steps = c.flatten(steps)
	}
	return steps
}

// matchNode runs child only if predicate holds at runtime.
type matchNode struct {
	predicate func(ctx *battle.Context) bool
	child     Node
}

// Match guards child behind a runtime predicate evaluated immediately
// before each of its flattened steps would run (e.g. "defender has no
// Substitute", "move has a secondary effect chance that procced").
func Match(predicate func(ctx *battle.Context) bool, child Node) Node {
	return matchNode{predicate: predicate, child: child}
}

func (n matchNode) flatten(steps []step) []step {
	inner := n.child.flatten(nil)
	for _, s := range inner {
		innerCond := s.cond
		pred := n.predicate
		steps = append(steps, step{op: s.op, cond: func(ctx *battle.Context) bool {
			if !pred(ctx) {
				return false
			}
			if innerCond != nil {
				return innerCond(ctx)
			}
			return true
		}})
	}
	return steps
}

// Repeat runs child exactly n times in sequence (e.g. a two-hit move).
func Repeat(n int, child Node) Node {
	children := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		children = append(children, child)
	}
	return seqNode{children: children}
}

// RepeatWhile runs child up to max times, stopping as soon as predicate
// returns false before an iteration (checked against ctx.LoopIteration,
// which the pipeline increments after each completed iteration of the
// guarded node). Used for bounded loops like a thrash move's hit count.
func RepeatWhile(max int, predicate func(ctx *battle.Context) bool, child Node) Node {
	children := make([]Node, 0, max)
	for i := 0; i < max; i++ {
		iter := i
		children = append(children, Match(func(ctx *battle.Context) bool {
			return ctx.LoopIteration == iter && predicate(ctx)
		}, seqNode{children: []Node{child, incrementNode{}}}))
	}
	return seqNode{children: children}
}

type incrementNode struct{}

func (incrementNode) flatten(steps []step) []step {
	return append(steps, step{op: Op{
		Name:        "loop.increment",
		InputStage:  Genesis,
		OutputStage: Terminus,
		Domains:     DomainMask(DomainTransient),
		Run: func(ctx *battle.Context) {
			ctx.LoopIteration++
		},
	}, cond: nil})
}

// Effect is a registered, validated composition: a move's full pipeline
// from Genesis to Terminus, plus the domain budget it is allowed to
// touch.
type Effect struct {
	Name       string
	AllowedDom DomainMask
	steps      []step
}

// Compile flattens root into a linear step list and validates it:
// non-monotonic stage transitions and domain-mask violations both panic
// immediately, since this runs once at package init and must prevent the
// engine from starting on a malformed composition rather than fail
// mid-battle.
func Compile(name string, allowed DomainMask, root Node) Effect {
	steps := root.flatten(nil)
	cur := Genesis
	for _, s := range steps {
		if cur < s.op.InputStage {
			panic(fmt.Sprintf("dsl: effect %q: op %q requires stage %s but pipeline is only at %s",
				name, s.op.Name, s.op.InputStage, cur))
		}
		if !allowed.Allows(s.op.Domains &^ DomainMask(DomainTransient)) {
			panic(fmt.Sprintf("dsl: effect %q: op %q touches domains outside its budget", name, s.op.Name))
		}
		if s.op.OutputStage > cur {
			cur = s.op.OutputStage
		}
	}
	return Effect{Name: name, AllowedDom: allowed, steps: steps}
}

// Pipeline is one in-flight run of a compiled Effect against a live
// Context, tracking the current stage at runtime (the Go equivalent of
// the original source's stage-tracking runtime class, since Go has no
// zero-cost compile-time type state to encode stage transitions).
type Pipeline struct {
	effect Effect
	stage  Stage
}

// NewPipeline starts a pipeline run at Genesis for the given effect.
func NewPipeline(e Effect) *Pipeline {
	return &Pipeline{effect: e, stage: Genesis}
}

// Stage returns the pipeline's current runtime stage.
func (p *Pipeline) Stage() Stage { return p.stage }

// Run executes every step of the compiled effect in order against ctx,
// skipping any step whose guard predicate evaluates false, and advancing
// the tracked stage as each step's declared output stage is reached.
func (p *Pipeline) Run(ctx *battle.Context) {
	for _, s := range p.effect.steps {
		if s.cond != nil && !s.cond(ctx) {
			continue
		}
		if ctx.Result.Failed || ctx.Result.Missed {
			if s.op.InputStage > AccuracyResolved {
				continue
			}
		}
		s.op.Run(ctx)
		if s.op.OutputStage > p.stage {
			p.stage = s.op.OutputStage
		}
	}
	p.stage = Terminus
}
