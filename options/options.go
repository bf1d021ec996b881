package options

// Options is the wrapper of variant params.
// Options follow the design of Functional Options (https://github.com/tmrts/go-patterns/blob/master/idiom/functional-options.md).
type Options struct {
	// Location represents the collection of time offsets in use in a geographical area.
	// It decides how date values render in formatter output.
	//  - If the name is "" or "UTC", LoadLocation returns UTC.
	//  - If the name is "Local", LoadLocation returns Local.
	//  - Otherwise, the name is taken to be a location name corresponding to a file in the
	//    IANA Time Zone database, such as "America/New_York", "Asia/Shanghai", and so on.
	//
	// Default: "Local".
	LocationName string `yaml:"locationName"`

	// MaxDepth is the maximum value nesting depth accepted when parsing,
	// serializing, and formatting. Deeper input fails cleanly instead of
	// exhausting the call stack.
	//
	// Default: 256.
	MaxDepth int `yaml:"maxDepth"`

	Log *LogOption `yaml:"log"` // Log options.
}

type LogOption struct {
	// Log level: DEBUG, INFO, WARN, ERROR.
	//
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log mode: SIMPLE, FULL.
	//
	// Default: "FULL".
	Mode string `yaml:"mode"`
	// Log filename: set this if you want to write log messages to files.
	//
	// Default: "".
	Filename string `yaml:"filename"`
	// Log sink: CONSOLE, FILE, and MULTI.
	//
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
}

// Option is the functional option type.
type Option func(*Options)

// LocationName sets the TZ location name for date rendering.
func LocationName(name string) Option {
	return func(opts *Options) {
		opts.LocationName = name
	}
}

// MaxDepth sets the nesting depth budget.
func MaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// Log sets LogOption.
func Log(o *LogOption) Option {
	return func(opts *Options) {
		opts.Log = o
	}
}

// NewDefault returns a default Options.
func NewDefault() *Options {
	return &Options{
		LocationName: "Local",
		MaxDepth:     256,
		Log: &LogOption{
			Mode:  "FULL",
			Level: "INFO",
		},
	}
}

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	// Default Options
	opts := NewDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
