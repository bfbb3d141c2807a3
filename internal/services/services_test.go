package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/strawhutmedia/onboarding/internal/form"
	"github.com/strawhutmedia/onboarding/internal/models"
	"github.com/strawhutmedia/onboarding/internal/services"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Company{},
		&models.Draft{},
		&models.Submission{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestIsApprovedCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	if err := services.AddCompany(db, "Acme Media"); err != nil {
		t.Fatalf("AddCompany failed: %v", err)
	}

	cases := []string{"Acme Media", "acme media", "ACME MEDIA", "  Acme Media  "}
	for _, name := range cases {
		ok, err := services.IsApproved(db, name)
		if err != nil {
			t.Fatalf("IsApproved(%q) error: %v", name, err)
		}
		if !ok {
			t.Errorf("Expected %q to be approved", name)
		}
	}

	ok, err := services.IsApproved(db, "Other Co")
	if err != nil {
		t.Fatalf("IsApproved error: %v", err)
	}
	if ok {
		t.Error("Expected unlisted company to be rejected")
	}

	ok, _ = services.IsApproved(db, "   ")
	if ok {
		t.Error("Expected blank name to be rejected")
	}
}

func TestAddCompanyRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)

	if err := services.AddCompany(db, "Acme Media"); err != nil {
		t.Fatalf("AddCompany failed: %v", err)
	}

	// Same name, different casing and padding
	if err := services.AddCompany(db, "  ACME media "); err == nil {
		t.Fatal("Expected duplicate to be rejected")
	}

	names, err := services.GetCompanies(db)
	if err != nil {
		t.Fatalf("GetCompanies failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("Expected 1 company, got %d", len(names))
	}
	if names[0] != "Acme Media" {
		t.Errorf("Expected stored name to keep original casing, got %q", names[0])
	}
}

func TestRemoveCompanyByPosition(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if err := services.AddCompany(db, name); err != nil {
			t.Fatalf("AddCompany(%q) failed: %v", name, err)
		}
	}

	if err := services.RemoveCompany(db, 1); err != nil {
		t.Fatalf("RemoveCompany failed: %v", err)
	}

	names, _ := services.GetCompanies(db)
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Gamma" {
		t.Errorf("Expected [Alpha Gamma], got %v", names)
	}

	if err := services.RemoveCompany(db, 5); err == nil {
		t.Error("Expected out-of-range removal to fail")
	}
}

func TestSyncCompaniesReplacesList(t *testing.T) {
	db := setupTestDB(t)
	if err := services.AddCompany(db, "Stale Co"); err != nil {
		t.Fatalf("AddCompany failed: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "getCompanies" {
			http.Error(w, "bad action", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"companies": []string{"Fresh One", " Fresh Two ", "fresh one", ""},
		})
	}))
	defer srv.Close()

	count, err := services.SyncCompanies(db, srv.URL)
	if err != nil {
		t.Fatalf("SyncCompanies failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected reported count to match stored rows, got %d", count)
	}

	names, _ := services.GetCompanies(db)
	if len(names) != 2 {
		t.Fatalf("Expected 2 stored companies after dedupe, got %v", names)
	}
	if names[0] != "Fresh One" || names[1] != "Fresh Two" {
		t.Errorf("Expected trimmed deduped list, got %v", names)
	}
}

func TestSyncCompaniesKeepsListOnFailure(t *testing.T) {
	db := setupTestDB(t)
	if err := services.AddCompany(db, "Keep Me"); err != nil {
		t.Fatalf("AddCompany failed: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	defer srv.Close()

	if _, err := services.SyncCompanies(db, srv.URL); err == nil {
		t.Fatal("Expected sync to fail on unsuccessful payload")
	}

	names, _ := services.GetCompanies(db)
	if len(names) != 1 || names[0] != "Keep Me" {
		t.Errorf("Expected stored list untouched, got %v", names)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	s := form.NewSession("Acme Media")
	s.SetValues(map[string]interface{}{
		"contactFirstName": "Ada",
		"contactLastName":  "Lovelace",
		"contactEmail":     "ada@acme.test",
	})
	if err := s.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if err := services.SaveDraft(db, s); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}

	restored := form.NewSession("  acme media ")
	if !services.RestoreDraft(db, restored) {
		t.Fatal("Expected draft to restore for case-variant company name")
	}
	if restored.Current != 2 {
		t.Errorf("Expected restored section 2, got %d", restored.Current)
	}
	if restored.StringValue("contactFirstName") != "Ada" {
		t.Errorf("Expected restored first name, got %q", restored.StringValue("contactFirstName"))
	}
	if !restored.Completed[1] {
		t.Error("Expected section 1 to be restored as complete")
	}
}

func TestSaveDraftUpserts(t *testing.T) {
	db := setupTestDB(t)

	s := form.NewSession("Acme Media")
	s.SetValues(map[string]interface{}{"contactFirstName": "Ada"})
	if err := services.SaveDraft(db, s); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}

	s.SetValues(map[string]interface{}{"contactFirstName": "Grace"})
	if err := services.SaveDraft(db, s); err != nil {
		t.Fatalf("Second SaveDraft failed: %v", err)
	}

	var count int64
	db.Model(&models.Draft{}).Count(&count)
	if count != 1 {
		t.Fatalf("Expected a single draft row, got %d", count)
	}

	restored := form.NewSession("Acme Media")
	if !services.RestoreDraft(db, restored) {
		t.Fatal("Expected draft to restore")
	}
	if restored.StringValue("contactFirstName") != "Grace" {
		t.Errorf("Expected latest draft value, got %q", restored.StringValue("contactFirstName"))
	}
}

func TestClearDraft(t *testing.T) {
	db := setupTestDB(t)

	s := form.NewSession("Acme Media")
	if err := services.SaveDraft(db, s); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}
	if err := services.ClearDraft(db, "ACME MEDIA"); err != nil {
		t.Fatalf("ClearDraft failed: %v", err)
	}
	if services.RestoreDraft(db, form.NewSession("Acme Media")) {
		t.Error("Expected no draft after clear")
	}
}

func submitSession(t *testing.T, db *gorm.DB, company, podcast string) *models.Submission {
	t.Helper()
	s := form.NewSession(company)
	s.SetValues(map[string]interface{}{
		"contactFirstName": "Ada",
		"contactLastName":  "Lovelace",
		"contactEmail":     "ada@" + strings.ToLower(strings.ReplaceAll(company, " ", "")) + ".test",
		"podcastName":      podcast,
		"podcastStatus":    "new",
		"platforms":        []string{"spotify", "apple"},
	})
	s.AddFiles(form.CategoryLogo, []form.FileDescriptor{{Name: "logo.png", Size: 1024}})
	sub, err := services.CreateSubmission(db, s)
	if err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}
	return sub
}

func TestSubmissionListAndIndexing(t *testing.T) {
	db := setupTestDB(t)

	first := submitSession(t, db, "Alpha Co", "Alpha Cast")
	second := submitSession(t, db, "Beta Co", "Beta Cast")
	// Force a strict ordering even when both land in the same wall-clock tick
	db.Model(second).Update("submitted_at", first.SubmittedAt.Add(1_000_000_000))

	subs, err := services.ListSubmissions(db)
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(subs))
	}
	if subs[0].Company != "Beta Co" {
		t.Errorf("Expected newest first, got %q", subs[0].Company)
	}

	sub, err := services.SubmissionAt(db, 1)
	if err != nil {
		t.Fatalf("SubmissionAt failed: %v", err)
	}
	if sub.Company != "Alpha Co" {
		t.Errorf("Expected oldest at index 1, got %q", sub.Company)
	}

	if _, err := services.SubmissionAt(db, 2); err == nil {
		t.Error("Expected out-of-range index to fail")
	}
}

func TestUpdateSubmissionPreservesTimestamp(t *testing.T) {
	db := setupTestDB(t)
	created := submitSession(t, db, "Alpha Co", "Alpha Cast")

	updated, err := services.UpdateSubmissionAt(db, 0, map[string]string{
		"podcastName": "Renamed Cast",
		"notAField":   "ignored",
	})
	if err != nil {
		t.Fatalf("UpdateSubmissionAt failed: %v", err)
	}
	if !updated.SubmittedAt.Equal(created.SubmittedAt) {
		t.Error("Expected SubmittedAt to be unchanged by edits")
	}

	values := services.SubmissionValues(updated)
	if values["podcastName"] != "Renamed Cast" {
		t.Errorf("Expected edited podcast name, got %v", values["podcastName"])
	}
	if _, ok := values["notAField"]; ok {
		t.Error("Expected unknown edit keys to be dropped")
	}
}

func TestDeleteSubmissionByPosition(t *testing.T) {
	db := setupTestDB(t)

	first := submitSession(t, db, "Alpha Co", "Alpha Cast")
	second := submitSession(t, db, "Beta Co", "Beta Cast")
	db.Model(second).Update("submitted_at", first.SubmittedAt.Add(1_000_000_000))

	// Index 0 is the newest record
	if err := services.DeleteSubmissionAt(db, 0); err != nil {
		t.Fatalf("DeleteSubmissionAt failed: %v", err)
	}

	subs, _ := services.ListSubmissions(db)
	if len(subs) != 1 || subs[0].Company != "Alpha Co" {
		t.Errorf("Expected only Alpha Co to remain, got %v", subs)
	}
}

func TestSubmissionFileColumns(t *testing.T) {
	db := setupTestDB(t)
	sub := submitSession(t, db, "Alpha Co", "Alpha Cast")

	logos := services.DecodeStringList(sub.LogoFiles)
	if len(logos) != 1 || logos[0] != "logo.png" {
		t.Errorf("Expected logo file names, got %v", logos)
	}
	platforms := services.DecodeStringList(sub.Platforms)
	if len(platforms) != 2 {
		t.Errorf("Expected 2 platforms, got %v", platforms)
	}
}

func TestSessionStore(t *testing.T) {
	store := services.NewSessionStore()

	token := store.Create(form.NewSession("Acme Media"))
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	s, err := store.Get(token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.Company != "Acme Media" {
		t.Errorf("Expected stored session, got company %q", s.Company)
	}
	if store.Count() != 1 {
		t.Errorf("Expected count 1, got %d", store.Count())
	}

	store.Remove(token)
	if _, err := store.Get(token); err == nil {
		t.Error("Expected removed token to miss")
	}
}
