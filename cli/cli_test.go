package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anjiri1684/faq_board/export"
	"github.com/anjiri1684/faq_board/models"
)

func TestWriteExport(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	questions := []models.Question{
		{ID: "a", Question: "q?", Name: models.AnonymousName, Status: models.StatusPending, CreatedAt: now},
	}

	var jsonOut bytes.Buffer
	if err := WriteExport(&jsonOut, "json", questions, now); err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	var env export.Envelope
	if err := json.Unmarshal(jsonOut.Bytes(), &env); err != nil {
		t.Fatalf("json export is not valid JSON: %v", err)
	}
	if env.TotalQuestions != 1 || env.PendingCount != 1 {
		t.Errorf("unexpected envelope %+v", env)
	}

	var csvOut bytes.Buffer
	if err := WriteExport(&csvOut, "csv", questions, now); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	if !strings.HasPrefix(csvOut.String(), export.BOM+"ID,") {
		t.Errorf("unexpected csv output %q", csvOut.String())
	}

	if err := WriteExport(&bytes.Buffer{}, "xml", questions, now); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportCmd_RejectsFormat(t *testing.T) {
	cmd := ExportCmd()
	cmd.SetArgs([]string{"--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportCmd_MemoryBackendToStdout(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	cmd := ExportCmd()
	cmd.SetArgs([]string{"--format", "csv", "--output", "-"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}
}
