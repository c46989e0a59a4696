package runner

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"

	"github.com/jowi/testlib/framework"
)

// Settings are the run options that can come from a settings file as well as from the command
// line. Undefined values leave the context unchanged.
type Settings struct {
	TimeUnit    ldvalue.OptionalString
	ThreadCount ldvalue.OptionalInt
	NoColor     ldvalue.Value
	Exclude     []string
}

type settingsFile struct {
	TimeUnit    string   `yaml:"time_unit"`
	ThreadCount *int     `yaml:"thread_count"`
	NoColor     *bool    `yaml:"no_color"`
	Exclude     []string `yaml:"exclude"`
}

// LoadSettings reads a YAML settings file such as
//
//	time_unit: ms
//	thread_count: 4
//	no_color: true
//	exclude: [slow_test]
//
// Unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	return ParseSettings(data)
}

func ParseSettings(data []byte) (Settings, error) {
	var file settingsFile
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return Settings{}, fmt.Errorf("malformed settings file: %w", err)
		}
	}

	var s Settings
	if file.TimeUnit != "" {
		s.TimeUnit = ldvalue.NewOptionalString(file.TimeUnit)
	}
	if file.ThreadCount != nil {
		s.ThreadCount = ldvalue.NewOptionalInt(*file.ThreadCount)
	}
	if file.NoColor != nil {
		s.NoColor = ldvalue.Bool(*file.NoColor)
	}
	s.Exclude = file.Exclude
	return s, nil
}

// Merge returns s with every value that is defined in over replaced by it.
func (s Settings) Merge(over Settings) Settings {
	if over.TimeUnit.IsDefined() {
		s.TimeUnit = over.TimeUnit
	}
	if over.ThreadCount.IsDefined() {
		s.ThreadCount = over.ThreadCount
	}
	if !over.NoColor.IsNull() {
		s.NoColor = over.NoColor
	}
	if len(over.Exclude) > 0 {
		s.Exclude = over.Exclude
	}
	return s
}

// Apply copies the defined time unit and thread count into ctx.
func (s Settings) Apply(ctx *framework.TestContext) error {
	if s.TimeUnit.IsDefined() {
		unit, err := framework.ParseTimeUnit(s.TimeUnit.StringValue())
		if err != nil {
			return err
		}
		ctx.SetTimeUnit(unit)
	}
	if s.ThreadCount.IsDefined() {
		n := s.ThreadCount.IntValue()
		if n < 1 {
			return fmt.Errorf("thread count must be at least 1, got %d", n)
		}
		ctx.SetThreadCount(n)
	}
	return nil
}
