package dsl

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/battle"
)

func noop(name string, in, out Stage, dom DomainMask) Op {
	return Op{Name: name, InputStage: in, OutputStage: out, Domains: dom, Run: func(ctx *battle.Context) {}}
}

func TestCompilePanicsOnUnreachedStage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Compile should panic when an op requires a stage the pipeline hasn't reached yet")
		}
	}()
	allowed := Domains(DomainSlot)
	root := Seq(
		Leaf(noop("stayGenesis", Genesis, Genesis, DomainMask(DomainSlot))),
		Leaf(noop("needsDamageApplied", DamageApplied, EffectApplied, DomainMask(DomainSlot))),
	)
	Compile("broken", allowed, root)
}

func TestCompilePanicsOnDomainViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Compile should panic when an op touches a domain outside its budget")
		}
	}()
	allowed := Domains(DomainSlot)
	root := Leaf(noop("touchesField", Genesis, Genesis, DomainMask(DomainField)))
	Compile("outOfBudget", allowed, root)
}

func TestCompileAllowsMonotonicStages(t *testing.T) {
	allowed := Domains(DomainSlot, DomainMon)
	root := Seq(
		Leaf(noop("one", Genesis, AccuracyResolved, DomainMask(DomainSlot))),
		Leaf(noop("two", AccuracyResolved, DamageCalculated, DomainMask(DomainMon))),
	)
	eff := Compile("fine", allowed, root)
	if eff.Name != "fine" {
		t.Errorf("Name = %q, want %q", eff.Name, "fine")
	}
}

func TestCompileAllowsSameStageRepeat(t *testing.T) {
	// An op requiring Genesis may run even after a preceding op has already
	// advanced the pipeline further, as long as it doesn't run before its
	// own declared input stage is reached.
	allowed := Domains(DomainSlot)
	root := Seq(
		Leaf(noop("advance", Genesis, EffectApplied, DomainMask(DomainSlot))),
		Leaf(noop("stillGenesis", Genesis, Genesis, DomainMask(DomainSlot))),
	)
	Compile("reentrant", allowed, root)
}

func TestPipelineRunSkipsStepsAfterMiss(t *testing.T) {
	var ran []string
	mk := func(name string, in, out Stage) Op {
		return Op{Name: name, InputStage: in, OutputStage: out, Domains: DomainMask(DomainSlot), Run: func(ctx *battle.Context) {
			ran = append(ran, name)
		}}
	}
	missOp := Op{Name: "miss", InputStage: Genesis, OutputStage: AccuracyResolved, Domains: DomainMask(DomainSlot), Run: func(ctx *battle.Context) {
		ctx.Result.Missed = true
	}}
	root := Seq(
		Leaf(missOp),
		Leaf(mk("atAccuracyResolved", AccuracyResolved, DamageCalculated)),
		Leaf(mk("pastAccuracyResolved", DamageCalculated, DamageApplied)),
	)
	eff := Compile("missTest", Domains(DomainSlot), root)
	p := NewPipeline(eff)
	ctx := &battle.Context{}
	p.Run(ctx)

	found := map[string]bool{}
	for _, name := range ran {
		found[name] = true
	}
	if !found["atAccuracyResolved"] {
		t.Error("an op whose input stage is exactly AccuracyResolved should still run after a miss")
	}
	if found["pastAccuracyResolved"] {
		t.Error("an op whose input stage is past AccuracyResolved should be skipped after a miss")
	}
	if p.Stage() != Terminus {
		t.Errorf("Stage() = %v, want Terminus after Run completes", p.Stage())
	}
}

func TestPipelineRunAdvancesStageNormally(t *testing.T) {
	order := []string{}
	mk := func(name string, in, out Stage) Op {
		return Op{Name: name, InputStage: in, OutputStage: out, Domains: DomainMask(DomainSlot), Run: func(ctx *battle.Context) {
			order = append(order, name)
		}}
	}
	root := Seq(
		Leaf(mk("a", Genesis, AccuracyResolved)),
		Leaf(mk("b", AccuracyResolved, DamageCalculated)),
		Leaf(mk("c", DamageCalculated, DamageApplied)),
	)
	eff := Compile("normal", Domains(DomainSlot), root)
	p := NewPipeline(eff)
	p.Run(&battle.Context{})

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("ops ran out of order: %v", order)
	}
}

func TestMatchSkipsWhenPredicateFalse(t *testing.T) {
	ran := false
	op := Op{Name: "conditional", InputStage: Genesis, OutputStage: Genesis, Domains: DomainMask(DomainSlot), Run: func(ctx *battle.Context) {
		ran = true
	}}
	root := Match(func(ctx *battle.Context) bool { return false }, Leaf(op))
	eff := Compile("matchFalse", Domains(DomainSlot), root)
	NewPipeline(eff).Run(&battle.Context{})
	if ran {
		t.Error("op guarded by a false predicate should not run")
	}
}

func TestRepeatRunsExactlyN(t *testing.T) {
	count := 0
	op := Op{Name: "hit", InputStage: Genesis, OutputStage: Genesis, Domains: DomainMask(DomainSlot), Run: func(ctx *battle.Context) {
		count++
	}}
	eff := Compile("repeat3", Domains(DomainSlot), Repeat(3, Leaf(op)))
	NewPipeline(eff).Run(&battle.Context{})
	if count != 3 {
		t.Errorf("Repeat(3) ran %d times, want 3", count)
	}
}
