package config

// Config is the style sheet configuration file.
type Config struct {
	Theme  string               `yaml:"theme" validate:"omitempty,oneof=default dark light"`
	Styles map[string]StyleRule `yaml:"styles" validate:"omitempty,dive,keys,style_token,endkeys"`
	Bar    BarConfig            `yaml:"bar"`
	Table  TableConfig          `yaml:"table"`
}

// StyleRule describes the look of one style token.
type StyleRule struct {
	Fg          string `yaml:"fg" validate:"omitempty,color"`
	Bg          string `yaml:"bg" validate:"omitempty,color"`
	Bold        bool   `yaml:"bold"`
	Italic      bool   `yaml:"italic"`
	Underline   bool   `yaml:"underline"`
	Faint       bool   `yaml:"faint"`
	Padding     *int   `yaml:"padding" validate:"omitempty,min=0,max=4"`
	Border      string `yaml:"border" validate:"omitempty,border"`
	BorderColor string `yaml:"border_color" validate:"omitempty,color"`
}

// BarConfig holds bar defaults.
type BarConfig struct {
	FontSize string `yaml:"font_size" validate:"omitempty,font_size"`
	Width    int    `yaml:"width" validate:"omitempty,min=1,max=500"`
}

// TableConfig holds table defaults.
type TableConfig struct {
	Border      string `yaml:"border" validate:"omitempty,border"`
	Placeholder string `yaml:"placeholder"`
}
