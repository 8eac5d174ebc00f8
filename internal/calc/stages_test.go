package calc

import "testing"

func TestApplyStatStageNeutral(t *testing.T) {
	if got := ApplyStatStage(100, 0); got != 100 {
		t.Errorf("neutral stage: got %d, want 100", got)
	}
}

func TestApplyStatStageMaxPositive(t *testing.T) {
	if got := ApplyStatStage(100, 6); got != 400 {
		t.Errorf("+6 stage: got %d, want 400", got)
	}
}

func TestApplyStatStageMaxNegative(t *testing.T) {
	if got := ApplyStatStage(100, -6); got != 25 {
		t.Errorf("-6 stage: got %d, want 25", got)
	}
}

func TestClampStageSaturates(t *testing.T) {
	if got := ClampStage(9); got != 6 {
		t.Errorf("ClampStage(9) = %d, want 6", got)
	}
	if got := ClampStage(-9); got != -6 {
		t.Errorf("ClampStage(-9) = %d, want -6", got)
	}
}

func TestEffectiveSpeedParalysisQuarters(t *testing.T) {
	full := EffectiveSpeed(100, 0, false)
	para := EffectiveSpeed(100, 0, true)
	if full != 100 {
		t.Errorf("unparalysed speed = %d, want 100", full)
	}
	if para != 25 {
		t.Errorf("paralysed speed = %d, want 25", para)
	}
}

func TestEffectiveAccuracyNeverMisses(t *testing.T) {
	if got := EffectiveAccuracy(0, 6, -6); got != 0 {
		t.Errorf("accuracy-0 sentinel should stay 0 regardless of stages, got %d", got)
	}
}

func TestEffectiveAccuracyClampsAt100(t *testing.T) {
	got := EffectiveAccuracy(100, 6, -6)
	if got != 100 {
		t.Errorf("EffectiveAccuracy(100, +6, -6) = %d, want clamped 100", got)
	}
}

func TestEffectiveAccuracyEvasionLowersIt(t *testing.T) {
	neutral := EffectiveAccuracy(100, 0, 0)
	loweredByEvasion := EffectiveAccuracy(100, 0, 6)
	if loweredByEvasion >= neutral {
		t.Errorf("raising defender evasion should lower effective accuracy: neutral=%d, raised=%d", neutral, loweredByEvasion)
	}
}
