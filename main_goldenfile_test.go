package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

type goldenFileTestCase struct {
	expect          string
	givenArgs       string
	givenStdin      string
	givenEnvs       map[string]string
	givenFiles      map[string]string
	wantOutExactly  string
	wantOutContains string
	wantStatusCode  int
}

// responsesServer replies with a single text part echoing "pong", or with
// status if it's not 200
func responsesServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"message":"nope"}}`)
			return
		}
		fmt.Fprint(w, `{"output":[{"content":[{"type":"output_text","text":"pong"}]}]}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setStdin replaces os.Stdin with a pipe carrying content for the duration of the test
func setStdin(t *testing.T, content string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	if _, err := w.WriteString(content); err != nil {
		t.Fatalf("WriteString(stdin): %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(stdin writer): %v", err)
	}
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = oldStdin
		_ = r.Close()
	})
}

func runGoldenFile(t *testing.T, srv *httptest.Server, tc goldenFileTestCase) {
	t.Helper()
	t.Setenv("GPT_CONFIG_HOME", t.TempDir())
	t.Setenv("GPT_RESPONSES_URL", srv.URL)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("NO_COLOR", "true")
	t.Setenv("GPT_RAW", "")
	t.Setenv("DEBUG", "")
	for k, v := range tc.givenEnvs {
		t.Setenv(k, v)
	}

	workDir := t.TempDir()
	for name, content := range tc.givenFiles {
		if err := os.WriteFile(filepath.Join(workDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): %v", name, err)
		}
	}
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("Chdir(%q): %v", workDir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	setStdin(t, tc.givenStdin)

	var gotStatusCode int
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		gotStatusCode = run(strings.Fields(tc.givenArgs))
	})

	testboil.FailTestIfDiff(t, gotStatusCode, tc.wantStatusCode)
	if tc.wantOutContains != "" {
		testboil.AssertStringContains(t, gotStdout, tc.wantOutContains)
	}
	if tc.wantOutExactly != "" {
		testboil.FailTestIfDiff(t, gotStdout, tc.wantOutExactly)
	}
}

func Test_goldenFile_ONESHOT(t *testing.T) {
	tcs := []goldenFileTestCase{
		{
			expect:         "prompt from args",
			givenArgs:      "-r write me a haiku",
			wantOutExactly: "You:\nwrite me a haiku\n\nAssistant:\npong\n",
		},
		{
			expect:         "default message with files",
			givenArgs:      "-r -f main.go --file go.mod",
			givenFiles:     map[string]string{"main.go": "package main", "go.mod": "module x"},
			wantOutExactly: "You:\nExplain the provided files.\n\nAssistant:\npong\n",
		},
		{
			expect:         "raw from env",
			givenArgs:      "hi",
			givenEnvs:      map[string]string{"GPT_RAW": "true"},
			wantOutExactly: "You:\nhi\n\nAssistant:\npong\n",
		},
		{
			expect:         "missing file exits 1 before querying",
			givenArgs:      "-r -f nope.txt hi",
			wantStatusCode: 1,
		},
		{
			expect:          "missing api key exits 1",
			givenArgs:       "-r hi",
			givenEnvs:       map[string]string{"OPENAI_API_KEY": ""},
			wantOutContains: "You:\nhi\n",
			wantStatusCode:  1,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.expect, func(t *testing.T) {
			runGoldenFile(t, responsesServer(t, http.StatusOK), tc)
		})
	}
}

func Test_goldenFile_ONESHOT_service_error_exits_1(t *testing.T) {
	runGoldenFile(t, responsesServer(t, http.StatusUnauthorized), goldenFileTestCase{
		givenArgs:       "-r hi",
		wantOutContains: "You:\nhi\n",
		wantStatusCode:  1,
	})
}

func Test_goldenFile_REPL(t *testing.T) {
	tcs := []goldenFileTestCase{
		{
			expect:         "one turn then quit",
			givenArgs:      "-r --repl",
			givenStdin:     "ping\n:q\n",
			wantOutExactly: "Entering REPL mode. Type :q or :quit to exit.\nYou > \nAssistant:\npong\nYou > ",
		},
		{
			expect:         "end of input ends the session",
			givenArgs:      "-r --repl",
			givenStdin:     "\n",
			wantOutExactly: "Entering REPL mode. Type :q or :quit to exit.\nYou > You > ",
		},
		{
			expect:     "file context banner",
			givenArgs:  "-r --repl -f notes.txt",
			givenStdin: ":quit\n",
			givenFiles: map[string]string{"notes.txt": "remember the milk"},
			wantOutExactly: "Entering REPL mode. Type :q or :quit to exit.\n" +
				"File context loaded and will be included with each message.\n" +
				"You > ",
		},
		{
			expect:         "missing file exits 1",
			givenArgs:      "-r --repl -f nope.txt",
			givenStdin:     "hi\n",
			wantStatusCode: 1,
		},
		{
			expect:          "missing api key fails per turn only",
			givenArgs:       "-r --repl",
			givenStdin:      "hi\n:q\n",
			givenEnvs:       map[string]string{"OPENAI_API_KEY": ""},
			wantOutContains: "Entering REPL mode. Type :q or :quit to exit.\nYou > You > ",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.expect, func(t *testing.T) {
			runGoldenFile(t, responsesServer(t, http.StatusOK), tc)
		})
	}
}

func Test_goldenFile_REPL_service_error_continues(t *testing.T) {
	runGoldenFile(t, responsesServer(t, http.StatusInternalServerError), goldenFileTestCase{
		givenArgs:      "-r --repl",
		givenStdin:     "a\nb\n",
		wantOutExactly: "Entering REPL mode. Type :q or :quit to exit.\nYou > You > You > ",
	})
}

func Test_goldenFile_VERSION_prints_version_and_exits_0(t *testing.T) {
	runGoldenFile(t, responsesServer(t, http.StatusOK), goldenFileTestCase{
		givenArgs:       "--version",
		wantOutContains: "gpt version ",
	})
}
