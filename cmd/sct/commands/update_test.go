package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sct-tools/sct-go/pkg/scl"
)

const (
	bindersInfo = `{"holderIedName":"IED_SUB","holderLdInst":"LD_SUB","holderLnClass":"LLN0",` +
		`"signal":{"desc":"STAT_LDSUIED_LPDO 1 Sortie","intAddr":"VDF","pServT":"GOOSE","pLN":"PTRC","pDO":"Tr","pDA":"general"},` +
		`"binding":{"iedName":"IED_PUB","ldInst":"LD_PUB","lnClass":"PTRC","lnInst":"1"}}`
	sourceInfo = `{"holderIedName":"IED_SUB","holderLdInst":"LD_SUB","holderLnClass":"LLN0",` +
		`"signal":{"desc":"STAT_LDSUIED_LPDO 1 Sortie","intAddr":"VDF","pServT":"GOOSE","pLN":"PTRC","pDO":"Tr","pDA":"general"},` +
		`"binding":{"iedName":"IED_PUB","ldInst":"LD_PUB","lnClass":"PTRC","lnInst":"1","serviceType":"GOOSE"},` +
		`"source":{"srcLDInst":"LD_PUB","srcLNClass":"LLN0","srcCBName":"CB_GOOSE"}}`
)

func TestRunUpdateBinders_WritesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rebound.scd")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunUpdateBinders([]string{"-info", bindersInfo, "-o", out, bindSCD}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	doc, err := scl.ParseFile(out)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	e := firstExtRef(t, doc, "IED_SUB", "LD_SUB")
	if e.IEDName != "IED_PUB" || e.LdInst != "LD_PUB" || e.DoName != "Tr" || e.DaName != "general" {
		t.Errorf("unexpected binding: %+v", e)
	}
	if !strings.Contains(stdout.String(), "updated") {
		t.Errorf("expected confirmation, got: %s", stdout.String())
	}
}

func TestRunUpdateBinders_InfoFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.json")
	if err := os.WriteFile(path, []byte(bindersInfo), 0o600); err != nil {
		t.Fatalf("write info: %v", err)
	}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunUpdateBinders([]string{"-info", "@" + path, bindSCD}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
}

func TestRunUpdateBinders_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no info", []string{bindSCD}, "-info is required"},
		{"bad json", []string{"-info", "{", bindSCD}, "decode ExtRefInfo"},
		{"no signal", []string{"-info", `{"holderIedName":"IED_SUB"}`, bindSCD}, "signal"},
		{"unknown IED", []string{"-info", strings.Replace(bindersInfo, `"iedName":"IED_PUB"`, `"iedName":"IED_NONE"`, 1), bindSCD}, "IED not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			exitCode := RunUpdateBinders(tt.args, stdout, stderr)

			if exitCode != exitCommandError {
				t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("expected %q in stderr, got: %s", tt.want, stderr.String())
			}
		})
	}
}

func TestRunUpdateSource_RequiresBinding(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunUpdateSource([]string{"-info", sourceInfo, bindSCD}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "no ExtRef") {
		t.Errorf("expected unbound ExtRef error, got: %s", stderr.String())
	}
}

func TestSessionExec_UpdateCommands(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	s, err := OpenSession(bindSCD, DefaultConfig(), stdout, stderr)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	defer s.Close()

	if code := s.Exec("update-binders", []string{"-info", bindersInfo}); code != exitSuccess {
		t.Fatalf("update-binders failed: %s", stderr.String())
	}
	if code := s.Exec("update-source", []string{"-info", sourceInfo}); code != exitSuccess {
		t.Fatalf("update-source failed: %s", stderr.String())
	}

	e := firstExtRef(t, s.Doc, "IED_SUB", "LD_SUB")
	if e.IEDName != "IED_PUB" {
		t.Errorf("expected iedName IED_PUB, got %q", e.IEDName)
	}
	if e.SrcLDInst != "LD_PUB" || e.SrcCBName != "CB_GOOSE" {
		t.Errorf("unexpected source: srcLDInst %q srcCBName %q", e.SrcLDInst, e.SrcCBName)
	}
}

func TestSessionExec_RejectsConfigFlags(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		flag    string
	}{
		{"validate", []string{"-config", "testdata/config.yaml"}, "-config"},
		{"bind-ied-names", []string{"-change-log", "changes.slog"}, "-change-log"},
		{"ldepf", []string{"-settings", "testdata/settings.yaml", "-log-level", "debug"}, "-log-level"},
		{"show", []string{"-config", "testdata/config.yaml"}, "-config"},
		{"update-binders", []string{"-info", bindersInfo, "-change-log", "changes.slog"}, "-change-log"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			s, err := OpenSession(bindSCD, DefaultConfig(), stdout, stderr)
			if err != nil {
				t.Fatalf("open session: %v", err)
			}
			defer s.Close()

			if code := s.Exec(tt.command, tt.args); code != exitCommandError {
				t.Errorf("expected exit code %d, got %d", exitCommandError, code)
			}
			want := tt.flag + " is not supported in the shell"
			if !strings.Contains(stderr.String(), want) {
				t.Errorf("expected %q in stderr, got: %s", want, stderr.String())
			}
			if e := firstExtRef(t, s.Doc, "IED_SUB", "LD_SUB"); e.IEDName != "" {
				t.Errorf("document must not be touched, got iedName %q", e.IEDName)
			}
		})
	}
}

func TestRunValidate_SeverityFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.scd")
	doc, err := scl.ParseFile(bindSCD)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, ied := range doc.IEDs() {
		hdr, _ := ied.ICDHeader()
		hdr.ICDSystemVersionUUID = "uuid-same"
	}
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		severity string
		items    int
	}{
		{"error", 1},
		{"warning", 0},
	}
	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			exitCode := RunValidate([]string{"-json", "-severity", tt.severity, path}, stdout, stderr)

			if exitCode != exitValidation {
				t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
			}
			var out ItemsOutput
			if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
				t.Fatalf("decode output: %v\n%s", err, stdout.String())
			}
			if out.Valid {
				t.Error("expected valid=false")
			}
			if len(out.Items) != tt.items {
				t.Errorf("expected %d items, got %d", tt.items, len(out.Items))
			}
		})
	}
}

func TestRunValidate_UnknownSeverity(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{"-severity", "info", bindSCD}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "unknown severity") {
		t.Errorf("expected severity error, got: %s", stderr.String())
	}
}

func TestRunShow_SubNetworkTypes(t *testing.T) {
	data, err := os.ReadFile(bindSCD)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	path := filepath.Join(t.TempDir(), "wifi.scd")
	wifi := strings.Replace(string(data), `type="8-MMS"`, `type="WIFI"`, 1)
	if err := os.WriteFile(path, []byte(wifi), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		file string
		want string
	}{
		{"known", bindSCD, "SubNetwork RSPACE_PROCESS_NETWORK (8-MMS)\n"},
		{"unknown", path, `SubNetwork RSPACE_PROCESS_NETWORK (WIFI) unknown SubNetwork type: "WIFI"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			exitCode := RunShow([]string{tt.file}, stdout, stderr)

			if exitCode != exitSuccess {
				t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("expected %q in output, got:\n%s", tt.want, stdout.String())
			}
		})
	}
}
