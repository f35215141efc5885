package domain

import (
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func TestNewModule(t *testing.T) {
	syllabus := "week 1: basics"
	m := NewModule("lang-1", "Basics", "basics", 2, nil, &syllabus)

	if m.LanguageID != "lang-1" || m.Title != "Basics" || m.Slug != "basics" {
		t.Errorf("unexpected module: %+v", m)
	}
	if m.SortOrder != 2 {
		t.Errorf("SortOrder = %d; want 2", m.SortOrder)
	}
	if m.Description != nil {
		t.Error("expected nil Description")
	}
	if m.Syllabus == nil || *m.Syllabus != syllabus {
		t.Errorf("Syllabus = %v; want %q", m.Syllabus, syllabus)
	}
}

func TestModuleUpdate_OrderOnlyPreservesOtherFields(t *testing.T) {
	desc := "intro module"
	syllabus := "week 1"
	m := NewModule("lang-1", "Basics", "basics", 0, &desc, &syllabus)
	m.UpdatedAt = time.Now().Add(-time.Hour)
	before := m.UpdatedAt

	m.Update(ModulePatch{Order: intPtr(3)})

	if m.SortOrder != 3 {
		t.Errorf("SortOrder = %d; want 3", m.SortOrder)
	}
	if m.Title != "Basics" {
		t.Errorf("Title = %q; want unchanged", m.Title)
	}
	if m.Description == nil || *m.Description != desc {
		t.Errorf("Description = %v; want unchanged", m.Description)
	}
	if m.Syllabus == nil || *m.Syllabus != syllabus {
		t.Errorf("Syllabus = %v; want unchanged", m.Syllabus)
	}
	if !m.UpdatedAt.After(before) {
		t.Error("expected UpdatedAt to be refreshed")
	}
}

func TestModuleUpdate_PatchSemantics(t *testing.T) {
	m := NewModule("lang-1", "Basics", "basics", 1, strPtr("d"), strPtr("s"))

	m.Update(ModulePatch{Title: strPtr("")})
	if m.Title != "Basics" {
		t.Errorf("Title = %q; want empty string ignored", m.Title)
	}

	m.Update(ModulePatch{Description: strPtr(""), Syllabus: strPtr(""), Order: intPtr(0)})
	if m.Description == nil || *m.Description != "" {
		t.Errorf("Description = %v; want stored empty string", m.Description)
	}
	if m.Syllabus == nil || *m.Syllabus != "" {
		t.Errorf("Syllabus = %v; want stored empty string", m.Syllabus)
	}
	if m.SortOrder != 0 {
		t.Errorf("SortOrder = %d; want zero applied", m.SortOrder)
	}
}

func TestModuleReorder(t *testing.T) {
	m := NewModule("lang-1", "Basics", "basics", 0, nil, nil)
	m.UpdatedAt = time.Now().Add(-time.Hour)
	before := m.UpdatedAt

	m.Reorder(7)
	if m.SortOrder != 7 {
		t.Errorf("SortOrder = %d; want 7", m.SortOrder)
	}
	if !m.UpdatedAt.After(before) {
		t.Error("expected Reorder to refresh UpdatedAt")
	}
}
