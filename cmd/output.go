package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	if *f == "" {
		return string(outputJSON)
	}
	return string(*f)
}

func (f *outputFormat) Set(value string) error {
	switch outputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case outputJSON:
		*f = outputJSON
	case outputYAML:
		*f = outputYAML
	default:
		return fmt.Errorf("unsupported output format %q (want json or yaml)", value)
	}
	return nil
}

func (f *outputFormat) Type() string {
	return "format"
}

func addOutputFlag(flags *pflag.FlagSet, target *outputFormat) {
	*target = outputJSON
	flags.VarP(target, "output", "o", "Result format: json or yaml")
}

// writeResult prints a backend JSON result. YAML output keeps the key order of
// the backend's response.
func writeResult(w io.Writer, raw json.RawMessage, format outputFormat) error {
	if format == outputYAML {
		out, err := jsonToYAML(raw)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("format result: %w", err)
	}
	_, err := fmt.Fprintln(w, pretty.String())
	return err
}

func jsonToYAML(raw json.RawMessage) (string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return "", fmt.Errorf("decode result: %w", err)
	}
	blockStyle(&node)

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return out.String(), nil
}

// blockStyle drops the flow style JSON input parses with, so the encoder
// writes ordinary block YAML.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
