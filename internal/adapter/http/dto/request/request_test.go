package request

import (
	"encoding/json"
	"testing"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestLineItemRequest_ToLineItem(t *testing.T) {
	var r LineItemRequest
	if err := json.Unmarshal([]byte(`{"name":"Cable","net_price":450.5,"unit":"Metros","delivery_type":"bogus"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := r.ToLineItem()
	if item.Quantity != 1 || item.Unit != entities.UnitMeter || item.DeliveryType != entities.DeliveryImmediate {
		t.Fatalf("unexpected defaults: %+v", item)
	}
	if !item.NetPrice.Equal(decimal.RequireFromString("450.5")) {
		t.Fatalf("unexpected price %s", item.NetPrice)
	}

	zero := 0
	r.Quantity = &zero
	if got := r.ToLineItem().Quantity; got != 0 {
		t.Fatalf("explicit quantity must be kept, got %d", got)
	}
}

func TestLineItemPatchRequest(t *testing.T) {
	var r LineItemPatchRequest
	if err := json.Unmarshal([]byte(`{"unit":"kg","delivery_type":"import","net_price":"1990"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Valid() {
		t.Fatalf("expected a valid patch")
	}
	p := r.ToPatch()
	if *p.Unit != entities.UnitKilogram || *p.DeliveryType != entities.DeliveryImport || p.Quantity != nil {
		t.Fatalf("unexpected patch: %+v", p)
	}

	bad := "express"
	r.DeliveryType = &bad
	if r.Valid() {
		t.Fatalf("unknown delivery type must be rejected")
	}
}

func TestQuoteInfoRequest(t *testing.T) {
	name := "Ana"
	r := QuoteInfoRequest{CustomerName: &name}
	if info := r.ToInfo(); info.CustomerName != "Ana" || info.CustomerRut != "" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if p := r.ToPatch(); p.CustomerName == nil || p.CustomerRut != nil {
		t.Fatalf("unexpected patch: %+v", p)
	}
}

func TestApproveRequest_ToInput(t *testing.T) {
	unit := "m"
	in := ApproveRequest{Category: "Cables", Unit: &unit}.ToInput()
	if in.Category != "Cables" || *in.Unit != entities.UnitMeter || in.NetPrice != nil {
		t.Fatalf("unexpected input: %+v", in)
	}
}
