package mrpapi

import (
	"testing"

	"github.com/sporadicmrp/engine/pkg/mrp"
)

func baseRequest() Request {
	return Request{
		InitialStock: 10,
		LeadtimeDays: 5,
		PeriodStart:  "2025-01-01",
		PeriodEnd:    "2025-01-31",
		StartCutoff:  "2025-01-01",
		EndCutoff:    "2025-01-31",
		Demand: []DemandEventJSON{
			{Date: "2025-01-10", Quantity: 40},
			{Date: "2025-01-10", Quantity: 10},
			{Date: "2025-01-20", Quantity: 25},
		},
	}
}

func TestToPlanningInputsParsesDatesAndMergesDuplicateDemand(t *testing.T) {
	params, demand, err := ToPlanningInputs(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.LeadtimeDays != 5 {
		t.Fatalf("LeadtimeDays = %d, want 5", params.LeadtimeDays)
	}
	if len(demand) != 2 {
		t.Fatalf("len(demand) = %d, want 2 distinct dates", len(demand))
	}
	jan10, err := mrp.ParseDay("2025-01-10")
	if err != nil {
		t.Fatal(err)
	}
	if demand[jan10] != 50 {
		t.Fatalf("demand[jan10] = %v, want 50 (40+10 merged)", demand[jan10])
	}
}

func TestToPlanningInputsRejectsMalformedDate(t *testing.T) {
	req := baseRequest()
	req.PeriodStart = "not-a-date"
	if _, _, err := ToPlanningInputs(req); err == nil {
		t.Fatal("expected an error for a malformed period_start")
	}
}

func TestToPlanningInputsRejectsNegativeLeadtime(t *testing.T) {
	req := baseRequest()
	req.LeadtimeDays = -1
	if _, _, err := ToPlanningInputs(req); err == nil {
		t.Fatal("expected an error for negative leadtime_days")
	}
}

func TestToPlanningInputsRejectsNegativeInitialStock(t *testing.T) {
	req := baseRequest()
	req.InitialStock = -5
	if _, _, err := ToPlanningInputs(req); err == nil {
		t.Fatal("expected an error for negative initial_stock")
	}
}

func TestToPlanningInputsRejectsMalformedDemandDate(t *testing.T) {
	req := baseRequest()
	req.Demand = []DemandEventJSON{{Date: "bogus", Quantity: 1}}
	if _, _, err := ToPlanningInputs(req); err == nil {
		t.Fatal("expected an error for a malformed demand date")
	}
}
