package main

import (
	"bytes"
	"strings"
	"testing"

	"xdao.co/namehash/cidutil"
	"xdao.co/namehash/digest"
)

func runCLI(t *testing.T, args []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestInteractive_PrintsNameAndDigest(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "Alice\n")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 stdout lines, got %d: %q", len(lines), stdout)
	}
	if lines[0] != "Alice" {
		t.Fatalf("line 1 = %q, want the exact input", lines[0])
	}
	if lines[1] != digest.Hex("Alice") {
		t.Fatalf("line 2 = %q, want %s", lines[1], digest.Hex("Alice"))
	}
	if !strings.Contains(stderr, namePrompt) {
		t.Fatalf("prompt missing from stderr: %q", stderr)
	}
}

func TestInteractive_PreservesInputExactly(t *testing.T) {
	// Only the line terminator is stripped; interior and edge whitespace stay.
	const name = "  Grace Hopper\t"
	code, stdout, _ := runCLI(t, nil, name+"\r\n")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if lines[0] != name {
		t.Fatalf("line 1 = %q, want %q", lines[0], name)
	}
	if lines[1] != digest.Hex(name) {
		t.Fatalf("digest line does not match input")
	}
}

func TestInteractive_EmptyName(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "\n")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "\n" + "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestInteractive_ClosedStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if stdout != "" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "read name") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestHash_KnownAnswer(t *testing.T) {
	code, stdout, stderr := runCLI(t, []string{"hash", "abc"}, "")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if stdout != "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestHash_Stdin(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"hash", "-"}, "abc")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != digest.Hex("abc")+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestHash_AlgSelection(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"hash", "--alg", "sha256", "abc"}, "")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestHash_Shake256Length(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"hash", "--alg", "shake256", "--length", "64", "abc"}, "")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	hexOut := strings.TrimSuffix(stdout, "\n")
	if len(hexOut) != 128 {
		t.Fatalf("output length = %d hex chars, want 128", len(hexOut))
	}
}

func TestHash_LengthRequiresShake(t *testing.T) {
	code, _, stderr := runCLI(t, []string{"hash", "--length", "64", "abc"}, "")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(stderr, "--length") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestHash_UnsupportedAlgorithm(t *testing.T) {
	code, _, stderr := runCLI(t, []string{"hash", "--alg", "md5", "abc"}, "")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(stderr, "unsupported algorithm") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestHash_MissingArgument(t *testing.T) {
	code, _, _ := runCLI(t, []string{"hash"}, "")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestCID_MatchesLibrary(t *testing.T) {
	code, stdout, stderr := runCLI(t, []string{"cid", "abc"}, "")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	want := cidutil.CIDv1RawSHA3([]byte("abc")) + "\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestCID_Stdin(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"cid", "-"}, "abc")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != cidutil.CIDv1RawSHA3([]byte("abc"))+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestVectors_SelfCheckPasses(t *testing.T) {
	code, stdout, stderr := runCLI(t, []string{"vectors"}, "")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	for _, v := range knownAnswers {
		if !strings.Contains(stdout, v.want) {
			t.Fatalf("vector output missing digest for %s %q", v.alg, v.input)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, []string{"bogus"}, "")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(stderr, "unknown command: bogus") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"help"}, "")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Fatalf("usage text missing: %q", stdout)
	}
}
