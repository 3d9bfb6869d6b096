package extract

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"category": "Transport", "confidence": 90}`,
		},
		{
			name: "object wrapped in markdown fences",
			raw:  "```json\n{\"category\": \"Servicii\"}\n```",
		},
		{
			name: "object surrounded by prose",
			raw:  "Iată rezultatul analizei:\n{\"category\": \"Materiale\"}\nSper că ajută!",
		},
		{
			name:    "no object at all",
			raw:     "Nu pot analiza acest document.",
			wantErr: true,
		},
		{
			name:    "malformed json",
			raw:     `{"category": "Transport",}`,
			wantErr: true,
		},
		{
			name:    "empty reply",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var analysis DocumentAnalysis
			err := decodeObject(tt.raw, &analysis)
			if tt.wantErr {
				if !errors.Is(err, ErrNoJSON) {
					t.Errorf("expected ErrNoJSON, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeObject: %v", err)
			}
		})
	}
}

func TestDecodeObject_MissingFieldsStayZero(t *testing.T) {
	var analysis DocumentAnalysis
	if err := decodeObject(`{"supplier": "ACME SRL"}`, &analysis); err != nil {
		t.Fatalf("decodeObject: %v", err)
	}
	if analysis.Supplier != "ACME SRL" {
		t.Errorf("supplier = %q", analysis.Supplier)
	}
	if analysis.Amount != "" || analysis.Confidence != 0 || analysis.Insights != nil {
		t.Error("expected omitted fields to stay at zero values")
	}
}

func TestDecodeObject_BankStatement(t *testing.T) {
	raw := `{
		"bankName": "Banca Transilvania",
		"statementPeriod": {"startDate": "01.05.2024", "endDate": "31.05.2024"},
		"transactions": [
			{"date": "02.05.2024", "description": "Plata furnizor", "amount": "-500 RON", "type": "debit"}
		]
	}`

	var analysis BankStatementAnalysis
	if err := decodeObject(raw, &analysis); err != nil {
		t.Fatalf("decodeObject: %v", err)
	}
	if analysis.BankName != "Banca Transilvania" {
		t.Errorf("bankName = %q", analysis.BankName)
	}
	if len(analysis.Transactions) != 1 || analysis.Transactions[0].Type != "debit" {
		t.Errorf("transactions = %+v", analysis.Transactions)
	}
}

func TestNewGeminiAnalyzer_MissingKey(t *testing.T) {
	_, err := NewGeminiAnalyzer("", "gemini-2.5-flash")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestWrapAPIError(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{503, "temporar indisponibil"},
		{429, "prea multe cereri"},
		{403, "cheia API"},
		{500, "eroare API Gemini: 500"},
	}

	for _, tt := range tests {
		err := wrapAPIError(genai.APIError{Code: tt.code, Message: "boom"})
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("code %d: error %q does not contain %q", tt.code, err, tt.want)
		}
	}
}

func TestWrapAPIError_NonAPIError(t *testing.T) {
	err := wrapAPIError(errors.New("network down"))
	if !strings.Contains(err.Error(), "eroare API Gemini") {
		t.Errorf("unexpected message: %q", err)
	}
	if !strings.Contains(err.Error(), "network down") {
		t.Errorf("original error not wrapped: %q", err)
	}
}
