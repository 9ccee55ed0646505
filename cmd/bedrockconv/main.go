package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cubeconverter/bedrockconv/bedrock"
	"github.com/cubeconverter/bedrockconv/internal/logger"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

func writeFiles(w io.Writer, files []*bedrock.File, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}
	data, err := yaml.Marshal(files)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeSchema(path string) error {
	data, err := json.MarshalIndent(bedrock.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bedrockconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bedrockconv [flags] input.json...\n")
		fs.PrintDefaults()
	}
	var flags Config
	confFile := fs.String("config", "", "config file (default: <input>.bedrockconv.yaml)")
	fs.StringVar(&flags.Prefix, "prefix", bedrock.DefaultPrefix, "render controller identifier prefix")
	fs.StringVar(&flags.Format, "format", "yaml", "output format: yaml or json")
	fs.StringVar(&flags.LogLevel, "loglevel", "info", "debug, info, warn or error")
	fs.StringVar(&flags.LogFile, "logfile", "", "rotating log file")
	output := fs.String("o", "", "output file (default: stdout)")
	schema := fs.String("schema", "", "write JSON schema of the input format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schema != "" {
		if err := writeSchema(*schema); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			return nil
		}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	conf, err := resolveConfig(fs, &flags, *confFile)
	if err != nil {
		return err
	}

	fileCfg := logger.FileConfig{}
	if conf.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(conf.LogFile)
	}
	log := logger.New(logger.Config{Level: conf.LogLevel, File: fileCfg, Console: stderr})
	defer log.Sync()

	parser := &bedrock.Parser{Prefix: conf.Prefix, Logger: log}
	var files []*bedrock.File
	for _, input := range fs.Args() {
		f, err := parser.ParseFile(input)
		if err != nil {
			log.Error("parse failed", zap.String("file", input), zap.Error(err))
			return err
		}
		log.Info("parsed",
			zap.String("file", input),
			zap.String("format_version", f.FormatVersion),
			zap.Int("controllers", len(f.Controllers)))
		files = append(files, f)
	}

	w := stdout
	if *output != "" {
		out, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
		log.Info("out", zap.String("file", *output))
	}
	return writeFiles(w, files, conf.Format)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
