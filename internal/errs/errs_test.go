package errs

import "testing"

func TestKindClassification(t *testing.T) {
	op := Op{Name: "Z.DivExact"}
	err := NewDomain(op, "5 does not divide 3 exactly")
	if !Is(err, Domain) {
		t.Error("expected Domain error")
	}
	if Is(err, Overflow) {
		t.Error("should not classify as Overflow")
	}
}

func TestInternalErrorCarriesCorrelationID(t *testing.T) {
	err := NewInternal(Op{Name: "Qx.Canonicalize"}, "invariant broken")
	if err.ID == "" {
		t.Error("expected a correlation ID on an INTERNAL error")
	}
	dom := NewDomain(Op{Name: "Q.Inv"}, "inverse of zero")
	if dom.ID != "" {
		t.Error("DOMAIN errors should not carry a correlation ID")
	}
}

func TestOverflowMessageHumanizesSize(t *testing.T) {
	err := NewOverflow(Op{Name: "Z.BitPack"}, 123456789, "destination too small")
	if err.Kind != Overflow {
		t.Errorf("kind = %s, want OVERFLOW", err.Kind)
	}
	if err.Message == "" {
		t.Error("expected a non-empty message")
	}
}

func TestErrorStringIncludesOp(t *testing.T) {
	err := NewDomain(Op{Name: "Qx.DivRem", Operands: "b=0"}, "division by zero polynomial")
	s := err.Error()
	if s == "" {
		t.Fatal("empty error string")
	}
	if want := "Qx.DivRem(b=0)"; !contains(s, want) {
		t.Errorf("error string %q does not mention op %q", s, want)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
