package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/pwgen/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				LogLevel:    "",
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer enabled trace",
			cfg: logger.Log{
				LogLevel:    "trace",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console enabled console writer disabled trace expect json stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := testLoggerConfig(t, tc.cfg)
			t.Logf("out: %s", stderr)

			if stdout != "" {
				t.Errorf("expected no log output on stdout but got: %s", stdout)
			}

			switch {
			case stderr == "" && tc.shouldHaveOutPut:
				t.Errorf("expected console output but got none")
			case stderr != "" && !tc.shouldHaveOutPut:
				t.Errorf("expected no console output but got: %s", stderr)
			case tc.outPutIsJSON:
				type line struct { //nolint:musttag
					Level   string
					App     string
					Message string
				}

				for _, outLine := range strings.Split(stderr, "\n") {
					if outLine == "" {
						continue
					}

					var l line
					if err := json.Unmarshal([]byte(outLine), &l); err != nil {
						t.Errorf("expected json output but got: %s", outLine)
					} else if l.App != "test" {
						t.Errorf("expected app field test but got: %q", l.App)
					}
				}
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     logger.Log
		wantErr error
	}{
		{
			name:    "missing service name",
			cfg:     logger.Log{LogLevel: "info", AppName: "test"},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name:    "missing app name",
			cfg:     logger.Log{LogLevel: "info", ServiceName: "test"},
			wantErr: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := logger.Init(tc.cfg); !errors.Is(err, tc.wantErr) {
				t.Errorf("Init() error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	if err := logger.Init(logger.Log{LogLevel: "loud", AppName: "test", ServiceName: "test"}); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestFileLogger(t *testing.T) {
	dir := t.TempDir()

	err := logger.Init(logger.Log{
		LogLevel:    "trace",
		AppName:     "test",
		ServiceName: "test",
		File: logger.LogFile{
			Enabled:  true,
			Path:     dir,
			ErrorLog: "error.log",
			InfoLog:  "info.log",
			TraceLog: "trace.log",
			WarnLog:  "warn.log",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	log.Info().Msg("info line")
	log.Warn().Msg("warn line")
	log.Error().Err(alwaysErrFunc()).Msg("error line")
	log.Trace().Msg("trace line")

	for file, want := range map[string]string{
		"info.log":  "info line",
		"warn.log":  "warn line",
		"error.log": "error line",
		"trace.log": "trace line",
	} {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			t.Fatalf("failed to read %s: %v", file, err)
		}

		if !strings.Contains(string(content), want) {
			t.Errorf("%s should contain %q, got: %s", file, want, content)
		}
	}
}

func alwaysErrFunc() error {
	return errors.New("a test error") //nolint:goerr113
}

func testLoggerConfig(t *testing.T, cfg logger.Log) (string, string) {
	t.Helper()
	// keep default std out
	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	err := logger.Init(cfg)
	if err != nil {
		t.Error(err)
	}

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErrFunc()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErrFunc()).Msg("this trace message should be seen...")

	// copy the output in separate goroutines so printing can't block indefinitely
	outC := drain(t, rOut)
	errC := drain(t, rErr)

	// back to normal state
	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr

	return <-outC, <-errC
}

func drain(t *testing.T, r io.Reader) <-chan string {
	t.Helper()

	c := make(chan string)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			t.Error(err)
		}
		c <- buf.String()
	}()

	return c
}
