package assessment

import "testing"

func TestWizard_CursorBounds(t *testing.T) {
	w := NewWizard(ClinicalAssessment{})

	if w.Section() != 0 {
		t.Fatalf("expected start at section 0, got %d", w.Section())
	}
	if w.Previous() {
		t.Error("Previous from section 0 should be unavailable")
	}
	if w.Section() != 0 {
		t.Errorf("cursor moved below 0: %d", w.Section())
	}

	for i := 1; i < SectionCount; i++ {
		if !w.Next() {
			t.Fatalf("Next failed at section %d", i-1)
		}
		if w.Section() != i {
			t.Fatalf("expected section %d, got %d", i, w.Section())
		}
	}

	if w.Next() {
		t.Error("Next from last section should be unavailable")
	}
	if !w.OnLastSection() {
		t.Error("expected to be on last section")
	}
	if w.Section() != SectionCount-1 {
		t.Errorf("cursor moved above %d: %d", SectionCount-1, w.Section())
	}
}

func TestWizard_DraftSurvivesNavigation(t *testing.T) {
	w := NewWizard(ClinicalAssessment{})

	w.ApplyGeneralInfo(GeneralInfo{Name: "Asha", Age: 45, Gender: "Female"})
	w.Next()
	w.ApplyMedicalHistory(MedicalHistory{Hypertension: "Yes", Diabetes: "No"})
	w.Previous()

	draft := w.Draft()
	if draft.Name != "Asha" || draft.Age != 45 {
		t.Errorf("general info lost on navigation: %+v", draft)
	}
	if draft.Hypertension != "Yes" {
		t.Errorf("medical history lost on navigation: %+v", draft)
	}

	// Re-applying a section overwrites its fields only.
	w.ApplyGeneralInfo(GeneralInfo{Name: "Asha Kumar", Age: 45})
	draft = w.Draft()
	if draft.Name != "Asha Kumar" {
		t.Errorf("expected re-applied name, got %s", draft.Name)
	}
	if draft.Hypertension != "Yes" {
		t.Error("re-applying section 0 must not clear section 1 fields")
	}
}

func TestWizard_CompleteOnlyOnLastSection(t *testing.T) {
	w := NewWizard(ClinicalAssessment{})

	if _, ok := w.Complete("Dr. Devi", "2025-01-15"); ok {
		t.Error("Complete should fail before the last section")
	}

	for w.Next() {
	}
	w.ApplyImagingFinal(ImagingFinal{
		WhiteMatterLesions: "Mild",
		QuickScores:        QuickScores{Cognitive: 70, Motor: 60, Speech: 80, Mood: "Normal"},
	})

	done, ok := w.Complete("Dr. Devi", "2025-01-15")
	if !ok {
		t.Fatal("Complete should succeed on the last section")
	}
	if done.AssessingDoctor != "Dr. Devi" || done.AssessmentDate != "2025-01-15" {
		t.Errorf("missing completion stamps: %+v", done)
	}
	if done.WhiteMatterLesions != "Mild" || done.QuickScores.Cognitive != 70 {
		t.Errorf("imaging section lost: %+v", done)
	}

	// Completing clears the buffer and resets the cursor.
	if w.Section() != 0 {
		t.Errorf("expected cursor reset to 0, got %d", w.Section())
	}
	if w.Draft().WhiteMatterLesions != "" {
		t.Error("expected draft cleared after completion")
	}
}

func TestWizard_ReentryKeepsExistingAssessment(t *testing.T) {
	existing := ClinicalAssessment{Name: "Asha", MMSE: 22}
	w := NewWizard(existing)

	if w.Draft().MMSE != 22 {
		t.Error("expected existing assessment as starting draft")
	}
}
