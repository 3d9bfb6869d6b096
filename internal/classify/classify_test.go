package classify

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"Contract_servicii.pdf", KindContract},
		{"extras_cont_ianuarie.pdf", KindBank},
		{"factura123.pdf", KindDocument},
		{"Acord-cadru.docx", KindContract},
		{"Conventie civila.pdf", KindContract},
		{"bank_statement_may.pdf", KindBank},
		{"sold_final.pdf", KindBank},
		{"bon_fiscal.jpg", KindDocument},
		{"EXTRAS_BANCA.PDF", KindBank},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

// A contract keyword wins even when a bank keyword is also present, since
// "cont" appears inside "contract".
func TestDetect_ContractBeatsBank(t *testing.T) {
	if got := Detect("contract_cont_bancar.pdf"); got != KindContract {
		t.Errorf("got %q, want %q", got, KindContract)
	}
}
