package constants

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"CLIENT", RoleClient},
		{"client", RoleClient},
		{" Client ", RoleClient},
		{"OPERATOR", RoleOperator},
		{"ADMIN", RoleAdmin},
		{"UnknownRole", RoleUnrecognized},
		{"", RoleUnrecognized},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	if got := RoleUnrecognized.String(); got != "UNRECOGNIZED" {
		t.Errorf("String() = %q", got)
	}
	if got := ParseRole(RoleOperator.String()); got != RoleOperator {
		t.Errorf("String/ParseRole round trip broke: %s", got)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusReceived.IsTerminal() || StatusProcessing.IsTerminal() {
		t.Error("RECEIVED and PROCESSING must allow further transitions")
	}
	if !StatusProcessed.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Error("PROCESSED and FAILED must be terminal")
	}
}

func TestClosedEnumerations(t *testing.T) {
	if !IsDocumentType("CONTRACT") || IsDocumentType("contract") || IsDocumentType("MEME") {
		t.Error("IsDocumentType must match exact members only")
	}
	if !IsChannel("DIGITAL") || IsChannel("CARRIER_PIGEON") {
		t.Error("IsChannel must match exact members only")
	}
}
