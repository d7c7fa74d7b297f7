package pipeline

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/rezonia/tenderdoc/internal/llm"
	"github.com/rezonia/tenderdoc/internal/model"
	"github.com/rezonia/tenderdoc/internal/normalize"
	pdfparser "github.com/rezonia/tenderdoc/internal/parser/pdf"
	"github.com/rezonia/tenderdoc/internal/producer"
	"github.com/rezonia/tenderdoc/internal/steps"
)

// Producer kinds accepted in pipeline configuration
const (
	ProducerField       = "field"
	ProducerMarkdown    = "markdown"
	ProducerTable       = "table"
	ProducerStepTable   = "steptable"
	ProducerPremade     = "premade"
	ProducerStepPremade = "step_premade"
)

// PlaceholderConfig describes one placeholder and how its content is produced
type PlaceholderConfig struct {
	Name     string `mapstructure:"name" json:"name"`
	Producer string `mapstructure:"producer" json:"producer"`
	Source   string `mapstructure:"source" json:"source,omitempty"` // key into Sources, or a path
	Field    string `mapstructure:"field" json:"field,omitempty"`   // field producer: which field
	Style    string `mapstructure:"style" json:"style,omitempty"`   // markdown producer: legal|purpose
	File     string `mapstructure:"file" json:"file,omitempty"`     // premade producer: content path
	Optional bool   `mapstructure:"optional" json:"optional,omitempty"`
}

// Config is the on-disk pipeline description
type Config struct {
	Template     string              `mapstructure:"template" json:"template"`
	Output       string              `mapstructure:"output" json:"output"`
	ContentDir   string              `mapstructure:"content_dir" json:"content_dir,omitempty"`
	Sources      map[string]string   `mapstructure:"sources" json:"sources,omitempty"`
	Placeholders []PlaceholderConfig `mapstructure:"placeholders" json:"placeholders"`
	Retries      int                 `mapstructure:"retries" json:"retries,omitempty"`
}

// LoadConfig reads a pipeline configuration file (YAML, TOML or JSON —
// whatever viper recognizes from the extension)
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, model.NewIOError("read config", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid pipeline config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for the mistakes a run would otherwise
// hit halfway through
func (c *Config) Validate() error {
	if c.Template == "" {
		return fmt.Errorf("pipeline config: template path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("pipeline config: output path is required")
	}
	if len(c.Placeholders) == 0 {
		return fmt.Errorf("pipeline config: no placeholders configured")
	}
	seen := map[string]bool{}
	for _, pc := range c.Placeholders {
		if pc.Name == "" {
			return fmt.Errorf("pipeline config: placeholder with empty name")
		}
		if seen[pc.Name] {
			return fmt.Errorf("pipeline config: duplicate placeholder %q", pc.Name)
		}
		seen[pc.Name] = true

		switch pc.Producer {
		case ProducerField, ProducerMarkdown, ProducerTable, ProducerStepTable, ProducerStepPremade:
			if pc.Source == "" {
				return fmt.Errorf("pipeline config: placeholder %q needs a source", pc.Name)
			}
		case ProducerPremade:
			if pc.File == "" {
				return fmt.Errorf("pipeline config: placeholder %q needs a file", pc.Name)
			}
		default:
			return fmt.Errorf("pipeline config: placeholder %q has unknown producer %q", pc.Name, pc.Producer)
		}
	}
	return nil
}

// resolveSource maps a logical source key to its configured path, or passes
// a literal path through
func (c *Config) resolveSource(key string) string {
	if path, ok := c.Sources[key]; ok {
		return path
	}
	return key
}

// BuildSteps wires the configured placeholders into runnable pipeline steps.
// Producers needing the LLM fail construction when no extractor is available.
func (c *Config) BuildSteps(pdfEx *pdfparser.Extractor, llmEx *llm.Extractor) ([]Step, error) {
	var built []Step
	for _, pc := range c.Placeholders {
		step := Step{
			Name:     pc.Name,
			Override: normalize.Default(),
			Optional: pc.Optional,
			Retries:  c.Retries,
		}

		needsLLM := pc.Producer != ProducerPremade
		if needsLLM && llmEx == nil {
			return nil, fmt.Errorf("placeholder %q uses producer %q which requires an LLM API key", pc.Name, pc.Producer)
		}

		switch pc.Producer {
		case ProducerField:
			field := pc.Field
			if field == "" {
				field = pc.Name
			}
			step.Producer = &producer.FieldProducer{
				PDF:    pdfEx,
				LLM:    llmEx,
				Source: c.resolveSource(pc.Source),
				Field:  field,
			}

		case ProducerMarkdown:
			style := llm.MarkdownLegal
			if pc.Style == string(llm.MarkdownPurpose) {
				style = llm.MarkdownPurpose
			}
			step.Producer = &producer.MarkdownProducer{
				PDF:    pdfEx,
				LLM:    llmEx,
				Source: c.resolveSource(pc.Source),
				Style:  style,
			}

		case ProducerTable:
			step.Producer = &producer.TableProducer{
				PDF:    pdfEx,
				LLM:    llmEx,
				Source: c.resolveSource(pc.Source),
			}

		case ProducerStepTable:
			step.Producer = &producer.StepTableProducer{
				PDF:    pdfEx,
				LLM:    llmEx,
				Source: c.resolveSource(pc.Source),
			}
			step.Override.ItalicPredicate = steps.IsSubStep

		case ProducerPremade:
			step.Producer = &producer.PremadeProducer{Path: pc.File}

		case ProducerStepPremade:
			step.Producer = &producer.StepPremadeProducer{
				Detector: steps.NewDetector(pdfEx, llmEx),
				Source:   c.resolveSource(pc.Source),
				Dir:      c.ContentDir,
			}
		}

		built = append(built, step)
	}
	return built, nil
}
