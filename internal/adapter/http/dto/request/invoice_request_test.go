package request

import (
	"testing"

	"kensetsu_match/internal/domain/entities"
)

func TestInvoiceGenerateRequest_ResolveContractID(t *testing.T) {
	r := InvoiceGenerateRequest{ContractID: " c-123 "}
	if got := r.ResolveContractID(); got != "c-123" {
		t.Fatalf("expected c-123, got %q", got)
	}

	r2 := InvoiceGenerateRequest{ContractID: "   "}
	if got := r2.ResolveContractID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestInvoiceGenerateRequest_ResolveBusinessType(t *testing.T) {
	r := InvoiceGenerateRequest{BusinessType: " Individual "}
	bt, ok := r.ResolveBusinessType()
	if !ok || bt != entities.BusinessTypeIndividual {
		t.Fatalf("expected individual, got %q ok=%v", bt, ok)
	}

	r2 := InvoiceGenerateRequest{BusinessType: "CORPORATION"}
	bt, ok = r2.ResolveBusinessType()
	if !ok || bt != entities.BusinessTypeCorporation {
		t.Fatalf("expected corporation, got %q ok=%v", bt, ok)
	}

	r3 := InvoiceGenerateRequest{BusinessType: "partnership"}
	if _, ok := r3.ResolveBusinessType(); ok {
		t.Fatalf("expected partnership to be rejected")
	}
}
