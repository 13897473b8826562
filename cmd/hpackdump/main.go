// Command hpackdump round-trips a YAML header-list fixture through an
// Encoder and Decoder pair and prints the wire bytes as hex followed by
// the decoded header list. With -v it also logs the header count and
// block size to stderr; it does not report which representation was
// chosen per header. It is a debugging aid, not a benchmark harness.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hpackcodec/internal/hpack"
	"hpackcodec/internal/hpack/hpackcfg"
	"hpackcodec/internal/hpack/hpacklog"
)

type fixture struct {
	Headers []struct {
		Name  string `yaml:"name"`
		Value string `yaml:"value"`
	} `yaml:"headers"`
}

func main() {
	var profilePath = flag.String("profile", "", "path to an hpackcfg YAML profile")
	var fixturePath = flag.String("fixture", "", "path to a YAML header-list fixture")
	var verbose = flag.Bool("v", false, "log header count and encoded block size")
	flag.Parse()

	if *profilePath == "" || *fixturePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	logger := hpacklog.Logger(hpacklog.Discard{})
	if *verbose {
		logger = hpacklog.NewStderr(hpacklog.LevelDebug)
	}

	if err := run(*profilePath, *fixturePath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "hpackdump: %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath, fixturePath string, logger hpacklog.Logger) error {
	profile, err := hpackcfg.Load(profilePath)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("parsing fixture: %w", err)
	}

	headers := make([]hpack.HeaderField, 0, len(fx.Headers))
	for _, h := range fx.Headers {
		headers = append(headers, hpack.HeaderField{Name: h.Name, Value: h.Value})
	}

	enc := profile.NewEncoder()
	block, err := enc.EncodeBlock(headers)
	if err != nil {
		return fmt.Errorf("encoding block: %w", err)
	}
	logger.Log(hpacklog.LevelDebug, "encoded %d headers into %d bytes", len(headers), len(block))
	fmt.Println(hex.EncodeToString(block))

	dec := profile.NewDecoder()
	decoded, err := dec.DecodeBlock(block)
	if err != nil {
		return fmt.Errorf("decoding block: %w", err)
	}
	for _, f := range decoded {
		fmt.Printf("%s: %s\n", f.Name, f.Value)
	}
	return nil
}
