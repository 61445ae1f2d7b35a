package extraction

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Rasterizer renders the first page of a PDF as a PNG.
type Rasterizer interface {
	FirstPage(ctx context.Context, pdf []byte) ([]byte, error)
}

// CommandRunner lets tests stub external commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct {
	logger *zap.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if err != nil {
		r.logger.Error("exec failed",
			zap.String("cmd", name),
			zap.String("args", strings.Join(args, " ")),
			zap.Duration("duration", time.Since(start)),
			zap.String("stderr", truncate(errb.String(), 8<<10)),
			zap.Error(err),
		)
	}
	return out.Bytes(), errb.Bytes(), err
}

// PdftoppmRasterizer shells out to poppler's pdftoppm.
type PdftoppmRasterizer struct {
	binary string
	dpi    int
	runner CommandRunner
}

var _ Rasterizer = (*PdftoppmRasterizer)(nil)

// NewPdftoppmRasterizer uses the system runner when runner is nil.
func NewPdftoppmRasterizer(binary string, dpi int, runner CommandRunner, logger *zap.Logger) *PdftoppmRasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	if dpi <= 0 {
		dpi = 150
	}
	if runner == nil {
		if logger == nil {
			logger = zap.NewNop()
		}
		runner = execRunner{logger: logger}
	}
	return &PdftoppmRasterizer{binary: binary, dpi: dpi, runner: runner}
}

func (r *PdftoppmRasterizer) FirstPage(ctx context.Context, pdf []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "cotizador-raster-*")
	if err != nil {
		return nil, eris.Wrap(err, "rasterize: temp dir")
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(in, pdf, 0o600); err != nil {
		return nil, eris.Wrap(err, "rasterize: write input")
	}
	root := filepath.Join(dir, "page")

	// pdftoppm -r <dpi> -png -f 1 -l 1 -singlefile <in.pdf> <root> writes <root>.png
	args := []string{"-r", strconv.Itoa(r.dpi), "-png", "-f", "1", "-l", "1", "-singlefile", in, root}
	if _, stderr, err := r.runner.Run(ctx, r.binary, args...); err != nil {
		return nil, eris.Wrapf(err, "rasterize: %s: %s", r.binary, truncate(strings.TrimSpace(string(stderr)), 512))
	}

	png, err := os.ReadFile(root + ".png")
	if err != nil {
		return nil, eris.Wrap(err, "rasterize: pdftoppm produced no image")
	}
	return png, nil
}
