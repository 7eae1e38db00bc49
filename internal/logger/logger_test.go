package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/YashBubna/minibank/internal/logger"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info().Str("accountNumber", "acc-1").Msg("account created")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("Unmarshalling log output: %v", err)
	}
	if event["message"] != "account created" {
		t.Errorf("Expected message 'account created', got %v", event["message"])
	}
	if event["accountNumber"] != "acc-1" {
		t.Errorf("Expected accountNumber 'acc-1', got %v", event["accountNumber"])
	}
	if event["time"] == nil {
		t.Error("Expected a timestamp field")
	}
}
