package cli

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/cache"
	"github.com/matzehuels/blocky/pkg/errors"
	blockyio "github.com/matzehuels/blocky/pkg/io"
	"github.com/matzehuels/blocky/pkg/observability"
)

const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"

	defaultTreeSize = 512
)

type treeOpts struct {
	pattern string
	file    string
	seed    uint64
	depth   int
	size    int
	format  string
	output  string
	noCache bool
}

func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{depth: -1, size: defaultTreeSize, format: formatDOT}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Export a board's quad-tree as Graphviz DOT, SVG or JSON",
		Long: `Export the quad-tree of a board. The board is either given in pattern
notation (--board), read from a JSON board file (--file) or generated at
random from --seed. JSON output can be read back with --file.`,
		Example: `  blocky tree --board "(b (r r g y) g y)"
  blocky tree --seed 7 --depth 4 --format svg -o board.svg
  blocky tree --seed 7 --format json -o board.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, formatDOT, formatSVG, formatJSON); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			b, err := treeBoard(opts)
			if err != nil {
				return err
			}
			data, err := c.renderTree(cmd.Context(), b, strings.ToLower(opts.format), opts.noCache)
			if err != nil {
				return err
			}
			return writeTree(opts.output, data)
		},
	}

	cmd.Flags().StringVarP(&opts.pattern, "board", "b", "", "board in pattern notation")
	cmd.Flags().StringVar(&opts.file, "file", "", "JSON board file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed for a random board when --board is not set")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", -1, fmt.Sprintf("max depth (default: pattern depth, or %d for random boards)", defaultTreeDepth))
	cmd.Flags().IntVar(&opts.size, "size", defaultTreeSize, "board size in pixels")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatDOT, "output format: dot, svg or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always re-render SVG output")

	cmd.MarkFlagsMutuallyExclusive("board", "file")

	return cmd
}

// treeBoard builds the board the tree command exports.
func treeBoard(opts treeOpts) (*board.Block, error) {
	if opts.pattern != "" || opts.file != "" {
		return loadBoard(opts.pattern, opts.file, opts.size, opts.depth)
	}
	depth := opts.depth
	if depth < 0 {
		depth = defaultTreeDepth
	}
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0xdeadbeef))
	return board.Generate(rng, opts.size, depth)
}

// renderTree returns b as DOT or JSON, or as SVG through the render cache.
func (c *CLI) renderTree(ctx context.Context, b *board.Block, format string, noCache bool) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(b.ToDOT()), nil
	case formatJSON:
		var buf bytes.Buffer
		if err := blockyio.WriteBoard(b, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	store := c.newCache(noCache)
	defer store.Close()
	hooks := observability.Cache()
	key := newKeyer().RenderKey(b.Pattern().String(), cache.RenderKeyOpts{
		Size:     b.Size(),
		MaxDepth: b.MaxDepth(),
		Format:   format,
	})
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, "render")
		return data, nil
	}
	hooks.OnCacheMiss(ctx, "render")

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Rendering SVG")
	spinner.Start()
	data, err := b.RenderSVG(ctx)
	spinner.Stop()
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d blocks", b.Count()))

	if err := store.Set(ctx, key, data, cache.TTLRender); err != nil {
		logger.Warn("could not cache render", "err", err)
	} else {
		hooks.OnCacheSet(ctx, "render", len(data))
	}
	return data, nil
}

func writeTree(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Wrote tree")
	printFile(path)
	return nil
}
