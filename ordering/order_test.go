package ordering

import (
	"drinkshop/lib"
	"drinkshop/structs"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func flavored(t *testing.T, base structs.Base, size structs.Size, flavors ...structs.Flavor) *Drink {
	t.Helper()
	d := mustDrink(t, base, size)
	for _, f := range flavors {
		if _, err := d.AddFlavor(f); err != nil {
			t.Fatalf("AddFlavor(%q) returned error: %v", f, err)
		}
	}
	return d
}

func TestNewOrder(t *testing.T) {
	o := NewOrder()
	if o.ID() == uuid.Nil {
		t.Errorf("expected a generated order id")
	}
	if !strings.HasPrefix(o.Number(), "DR-") {
		t.Errorf("Number() = %q, want DR- prefix", o.Number())
	}
	if o.NumItems() != 0 || len(o.Items()) != 0 {
		t.Errorf("expected an empty order")
	}
	if !o.Total().IsZero() {
		t.Errorf("Total() = %s, want 0", o.Total())
	}
}

func TestAddItem(t *testing.T) {
	o := NewOrder()
	d1 := mustDrink(t, "hill fog", "medium")
	d2 := mustDrink(t, "water", "small")

	if err := o.AddItem(d1); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := o.AddItem(d2); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	items := o.Items()
	if len(items) != 2 || items[0] != d1 || items[1] != d2 {
		t.Errorf("Items() = %v, want [d1 d2]", items)
	}
}

func TestAddItem_Rejects(t *testing.T) {
	owned := mustDrink(t, "sbrite", "small")
	first := NewOrder()
	if err := first.AddItem(owned); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		drink *Drink
	}{
		{"nil drink", nil},
		{"zero value drink", &Drink{}},
		{"drink owned by another order", owned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder()
			if err := o.AddItem(tt.drink); !errors.Is(err, lib.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if o.NumItems() != 0 {
				t.Errorf("rejected drink was added")
			}
		})
	}

	if err := first.AddItem(owned); !errors.Is(err, lib.ErrInvalidArgument) {
		t.Errorf("adding the same drink twice: expected ErrInvalidArgument, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	o := NewOrder()
	drinks := []*Drink{
		mustDrink(t, "hill fog", "medium"),
		mustDrink(t, "Mr. Salt", "large"),
		mustDrink(t, "water", "small"),
	}
	for _, d := range drinks {
		if err := o.AddItem(d); err != nil {
			t.Fatal(err)
		}
	}

	if err := o.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}

	items := o.Items()
	if len(items) != 2 || items[0] != drinks[0] || items[1] != drinks[2] {
		t.Errorf("Items() = %v, want first and last drink", items)
	}

	// the removed drink is free to join another order
	if err := NewOrder().AddItem(drinks[1]); err != nil {
		t.Errorf("removed drink could not be re-added: %v", err)
	}
}

func TestRemoveItem_OutOfRange(t *testing.T) {
	o := NewOrder()
	if err := o.AddItem(mustDrink(t, "hill fog", "medium")); err != nil {
		t.Fatal(err)
	}

	for _, index := range []int{-1, 1, 5} {
		if err := o.RemoveItem(index); !errors.Is(err, lib.ErrIndexOutOfRange) {
			t.Errorf("RemoveItem(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
	if o.NumItems() != 1 {
		t.Errorf("NumItems() = %d, want 1", o.NumItems())
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	o := NewOrder()
	d := mustDrink(t, "hill fog", "medium")
	if err := o.AddItem(d); err != nil {
		t.Fatal(err)
	}

	items := o.Items()
	items[0] = nil

	if o.Items()[0] != d {
		t.Errorf("mutating Items() result changed the order")
	}
}

func TestOrderTotal(t *testing.T) {
	o := NewOrder()
	if err := o.AddItem(flavored(t, "hill fog", "medium", "lemon")); err != nil {
		t.Fatal(err)
	}
	if err := o.AddItem(flavored(t, "Mr. Salt", "large", "cherry")); err != nil {
		t.Fatal(err)
	}

	if !o.Subtotal().Equal(dec("4.10")) {
		t.Errorf("Subtotal() = %s, want 4.10", o.Subtotal())
	}
	if !o.Total().Equal(dec("4.39725")) {
		t.Errorf("Total() = %s, want 4.39725", o.Total())
	}
}

func TestOrderTotal_IsSubtotalTimesTax(t *testing.T) {
	o := NewOrder()
	for _, size := range structs.Sizes {
		if err := o.AddItem(flavored(t, "pokeacola", size, "mint", "lime")); err != nil {
			t.Fatal(err)
		}
	}

	want := o.Subtotal().Mul(dec("1.0725"))
	if !o.Total().Equal(want) {
		t.Errorf("Total() = %s, want %s", o.Total(), want)
	}
}

func TestReceipt(t *testing.T) {
	o := NewOrder()
	if err := o.AddItem(flavored(t, "hill fog", "medium", "lemon")); err != nil {
		t.Fatal(err)
	}
	if err := o.AddItem(flavored(t, "Mr. Salt", "large", "cherry")); err != nil {
		t.Fatal(err)
	}

	want := "Receipt:\n" +
		"Drink 1: Base = hill fog, Size = medium, Flavors = lemon, Cost: $1.90\n" +
		"Drink 2: Base = Mr. Salt, Size = large, Flavors = cherry, Cost: $2.20\n" +
		"\nTotal Order Cost (including tax): $4.40"

	if got := o.Receipt(); got != want {
		t.Errorf("Receipt() =\n%s\nwant\n%s", got, want)
	}
}

func TestReceipt_Empty(t *testing.T) {
	want := "Receipt:\n\nTotal Order Cost (including tax): $0.00"
	if got := NewOrder().Receipt(); got != want {
		t.Errorf("Receipt() = %q, want %q", got, want)
	}
}

func TestReceipt_DrinkWithoutFlavors(t *testing.T) {
	o := NewOrder()
	if err := o.AddItem(mustDrink(t, "water", "SMALL")); err != nil {
		t.Fatal(err)
	}

	want := "Receipt:\n" +
		"Drink 1: Base = water, Size = small, Flavors = , Cost: $1.50\n" +
		"\nTotal Order Cost (including tax): $1.61"
	if got := o.Receipt(); got != want {
		t.Errorf("Receipt() = %q, want %q", got, want)
	}
}

func TestOrderNumber_DerivedFromID(t *testing.T) {
	o := NewOrder()
	if o.Number() != lib.OrderNumber(o.ID()) {
		t.Errorf("Number() = %q, want %q", o.Number(), lib.OrderNumber(o.ID()))
	}
}

func TestZeroValues_UseDefaultPricing(t *testing.T) {
	var o Order
	if !o.Total().IsZero() || !o.Subtotal().IsZero() {
		t.Errorf("zero order should total 0, got %s", o.Total())
	}
	if got := o.Receipt(); got != "Receipt:\n\nTotal Order Cost (including tax): $0.00" {
		t.Errorf("unexpected receipt %q", got)
	}

	d := mustDrink(t, "water", "small")
	if err := o.AddItem(d); err != nil {
		t.Fatalf("AddItem on zero order returned error: %v", err)
	}
	if got := lib.FormatPrice(o.Total()); got != "$1.61" {
		t.Errorf("Total() = %s, want $1.61", got)
	}

	var zero Drink
	if !zero.Cost().IsZero() {
		t.Errorf("zero drink Cost() = %s, want 0", zero.Cost())
	}
	if got := zero.String(); got != " () - $0.00" {
		t.Errorf("zero drink String() = %q", got)
	}
}
