package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"flight-parser/domain"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// apiKeyEnv carries the configured DJI_APP_KEY to the decoder program under the same name.
const apiKeyEnv = "DJI_APP_KEY"

// ExecDecoder delegates decoding to an external program speaking a small
// command line protocol:
//
//	<bin> keychains <file>   DJI_APP_KEY in env, prints the keychains as JSON
//	<bin> parse <file>       keychains JSON on stdin, prints {"columns": [...], "rows": [...]}
//
// The program owns every detail of the log format and of the keychain service.
type ExecDecoder struct {
	log     *slog.Logger
	binPath string
	timeout time.Duration
}

func NewExecDecoder(log *slog.Logger, binPath string, timeout time.Duration) *ExecDecoder {
	return &ExecDecoder{log: log, binPath: binPath, timeout: timeout}
}

func (d *ExecDecoder) RequiresKeychains() bool {
	return true
}

func (d *ExecDecoder) FetchKeychains(ctx context.Context, path, apiKey string) (domain.Keychains, error) {
	out, err := d.run(ctx, nil, []string{apiKeyEnv + "=" + apiKey}, "keychains", path)
	if err != nil {
		return nil, err
	}
	var keychains any
	if err := decodeJSON(out, &keychains); err != nil {
		return nil, fmt.Errorf("keychains output of %s: %w", d.binPath, err)
	}
	return keychains, nil
}

type parseOutput struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func (d *ExecDecoder) Parse(ctx context.Context, path string, keychains domain.Keychains) (domain.FlightLog, error) {
	stdin, err := json.Marshal(keychains)
	if err != nil {
		return domain.FlightLog{}, fmt.Errorf("keychains cannot be handed to %s: %w", d.binPath, err)
	}
	out, err := d.run(ctx, stdin, nil, "parse", path)
	if err != nil {
		return domain.FlightLog{}, err
	}
	var parsed parseOutput
	if err := decodeJSON(out, &parsed); err != nil {
		return domain.FlightLog{}, fmt.Errorf("parse output of %s: %w", d.binPath, err)
	}
	return domain.FlightLog{
		File:    filepath.Base(path),
		Columns: parsed.Columns,
		Rows:    parsed.Rows,
	}, nil
}

func (d *ExecDecoder) run(ctx context.Context, stdin []byte, env []string, command, path string) ([]byte, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, d.binPath, command, path)
	cmd.Env = append(os.Environ(), env...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the pipes open must not outlive the deadline.
	cmd.WaitDelay = time.Second
	setPlatformSpecificAttrs(cmd)

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, fmt.Errorf("%s %s: %w: %s", filepath.Base(d.binPath), command, err, strings.TrimSpace(stderr.String()))
	}
	d.log.Debug("Decoder command finished", "command", command, "file", filepath.Base(path), "took", time.Since(start))
	return stdout.Bytes(), nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
