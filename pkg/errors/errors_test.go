package errors

import "testing"

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(404, "task not found")
	if err.Error() != "task not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	withHint := NewHTTPError(502, "upstream failed").WithHint("check the connector")
	if withHint.Error() != "upstream failed (check the connector)" {
		t.Errorf("unexpected message: %q", withHint.Error())
	}
	if withHint.Status != 502 {
		t.Errorf("unexpected status: %d", withHint.Status)
	}
}
