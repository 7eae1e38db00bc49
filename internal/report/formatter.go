package report

import (
	"encoding/json"

	"github.com/YashBubna/minibank/internal/domain"
	"github.com/YashBubna/minibank/internal/service"
)

// Statement is the printable view of one account: its current details plus
// its transaction history, ascending by timestamp
type Statement struct {
	Account service.AccountDetails `json:"account"`
	History []domain.Transaction   `json:"history"`
}

// OutputFormatter defines the interface for formatting account statements
type OutputFormatter interface {
	Format(statement Statement) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats account statements as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(statement Statement) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(statement, "", "  ")
	}
	return json.Marshal(statement)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
