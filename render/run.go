package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/config"
	"cssel/state"
)

// Run implements the render subcommand: read a selector document, build
// every selector and write the result to the destination.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no selector document has been specified")
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	requested := env.Cfg.Render.Format
	if cmd.IsSet("to") {
		requested = cmd.String("to")
	}
	format, err := config.ParseOutputFmt(requested)
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		format = config.OutputFmtText
	}

	env.Overwrite = cmd.Bool("overwrite")
	sortOutput := cmd.Bool("sort") || env.Cfg.Render.SortOutput
	explain := cmd.Bool("explain") || env.Cfg.Render.Explain

	log.Info("Rendering starting", zap.String("source", src), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read selector document %q: %w", src, err)
	}

	doc, err := LoadDocument(data)
	if err != nil {
		return err
	}

	rendered, err := doc.Build()
	if err != nil {
		return fmt.Errorf("unable to build selectors from %q: %w", src, err)
	}

	if sortOutput {
		SortNatural(rendered)
	}

	if explain {
		for _, r := range rendered {
			log.Debug("Selector token breakdown",
				zap.String("name", r.Name),
				zap.String("tokens", FormatTokens(Explain(r.Selector))))
		}
	}

	out := os.Stdout
	if len(dst) > 0 {
		if _, err := os.Stat(dst); err == nil && !env.Overwrite {
			return fmt.Errorf("destination %q already exists, use overwrite flag to replace it", dst)
		}
		if out, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create destination file %q: %w", dst, err)
		}
		defer out.Close()
	}

	if err := Write(out, format, env.Cfg.Render.GoPackage, rendered); err != nil {
		return fmt.Errorf("unable to write rendered selectors: %w", err)
	}

	log.Info("Selectors rendered", zap.Int("count", len(rendered)))
	return nil
}
