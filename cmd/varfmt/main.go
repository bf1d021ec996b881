package main

import (
	"fmt"
	"io"
	"os"

	_ "time/tzdata"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tableauio/variant"
	"github.com/tableauio/variant/log"
	"github.com/tableauio/variant/options"
	"github.com/tableauio/variant/tree"
	"github.com/tableauio/variant/xerrors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	ModeCompact = "compact" // tree-mediated compact JSON
	ModePretty  = "pretty"  // tree-mediated pretty JSON
	ModeJSON    = "json"    // streaming JSON formatter
	ModeText    = "text"    // indented human-readable text
)

var (
	mode               string
	configPath         string
	needOutputConfTmpl bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "varfmt [FILE]...",
		Version: genVersion(),
		Short:   "Varfmt reformats JSON documents through the variant value model",
		Long: `Varfmt parses each input document into a variant value and renders it back
as compact JSON, pretty JSON, or indented human-readable text. It reads
stdin when no files are given.`,
		Run: runCmd,
	}

	rootCmd.Flags().StringVarP(&mode, "mode", "m", "compact", `Available mode: compact, pretty, json, and text.
- compact: serialize to compact JSON via the parse tree.
- pretty: serialize to pretty JSON via the parse tree.
- json: render with the streaming JSON formatter.
- text: render with the indented human-readable formatter.
`)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().BoolVarP(&needOutputConfTmpl, "output-config-template", "t", false, "Output config template")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func runCmd(cmd *cobra.Command, args []string) {
	if needOutputConfTmpl {
		outputConfTmpl()
		return
	}

	opts := options.NewDefault()
	if configPath != "" {
		if err := loadConf(configPath, opts); err != nil {
			log.Errorf("load config(options) failed: %+v", err)
			os.Exit(-1)
		}
	}
	if err := log.Init(opts.Log); err != nil {
		log.Errorf("init log failed: %+v", err)
		os.Exit(-1)
	}
	log.Debugf("loaded varfmt config: %+v", spew.Sdump(opts))

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Errorf("read stdin failed: %+v", err)
			os.Exit(-1)
		}
		out, err := render(data, opts)
		if err != nil {
			log.Errorf("format stdin failed: %+v", err)
			os.Exit(-1)
		}
		fmt.Println(out)
		return
	}

	// Format inputs concurrently, but print them in argument order.
	outputs := make([]string, len(args))
	var eg errgroup.Group
	for i, path := range args {
		i, path := i, path
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return xerrors.WrapKV(err, "file", path)
			}
			out, err := render(data, opts)
			if err != nil {
				return xerrors.WrapKV(err, "file", path)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Errorf("format failed: %+v", err)
		os.Exit(-1)
	}
	for _, out := range outputs {
		fmt.Println(out)
	}
}

func render(data []byte, opts *options.Options) (string, error) {
	v, err := tree.Decode(data, &tree.Options{MaxDepth: opts.MaxDepth})
	if err != nil {
		return "", err
	}
	setters := []options.Option{
		options.LocationName(opts.LocationName),
		options.MaxDepth(opts.MaxDepth),
	}
	switch mode {
	case ModeCompact:
		return variant.Serialize(&v, false, setters...)
	case ModePretty:
		return variant.Serialize(&v, true, setters...)
	case ModeJSON:
		return variant.FormatJSON(&v, setters...)
	case ModeText:
		return variant.FormatText(&v, setters...)
	default:
		return "", xerrors.Errorf("unknown mode: %s", mode)
	}
}

func loadConf(path string, out *options.Options) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return xerrors.Wrap(err)
	}
	err = yaml.Unmarshal(d, out)
	if err != nil {
		return xerrors.Wrap(err)
	}
	return nil
}

func outputConfTmpl() {
	defaultConf := options.NewDefault()
	d, err := yaml.Marshal(defaultConf)
	if err != nil {
		fmt.Printf("marshal failed: %+v\n", err)
		os.Exit(-1)
	}
	fmt.Println(string(d))
}

func genVersion() string {
	info := variant.GetVersionInfo()
	ver := info.Version
	if info.Revision != "" {
		ver += fmt.Sprintf(" (%s, %s)", info.Revision, info.Time)
	}
	return ver
}
