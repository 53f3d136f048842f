package types

// OutputFormat selects how the CLI renders formatted records.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputCSL  OutputFormat = "csl"
)

// FormatConfig holds settings for the format command.
type FormatConfig struct {
	// Style is applied to records that do not name a style (default MLA).
	Style Style `json:"style" yaml:"style"`

	// Output selects text citations or CSL-YAML.
	Output OutputFormat `json:"output" yaml:"output"`

	// Copy places the text output on the system clipboard.
	Copy bool `json:"copy" yaml:"copy"`
}

// ExportConfig holds settings for the XLSX export command.
type ExportConfig struct {
	// Sheet is the worksheet name (default "Citations").
	Sheet string `json:"sheet" yaml:"sheet"`
}

// Config groups all command configurations.
type Config struct {
	Format FormatConfig `json:"format" yaml:"format"`
	Export ExportConfig `json:"export" yaml:"export"`
}
