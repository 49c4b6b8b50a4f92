package config

// Config is the complete set of ddbg settings.
type Config struct {
	UI          UI          `koanf:"ui" toml:"ui"`
	Print       Print       `koanf:"print" toml:"print"`
	Target      Target      `koanf:"target" toml:"target"`
	Breakpoints Breakpoints `koanf:"breakpoints" toml:"breakpoints"`
	Logging     Logging     `koanf:"logging" toml:"logging"`
	Startup     Startup     `koanf:"startup" toml:"startup"`
}

// UI controls how output is rendered.
type UI struct {
	Format   string `koanf:"format" toml:"format"`
	Annotate int    `koanf:"annotate" toml:"annotate"`
}

// Print holds the `set print` settings.
type Print struct {
	Address bool `koanf:"address" toml:"address"`
}

// Target selects the program and how its exceptions are raised.
type Target struct {
	Program string `koanf:"program" toml:"program"`
	ABI     string `koanf:"abi" toml:"abi"`
}

// Breakpoints holds breakpoint settings.
type Breakpoints struct {
	Pending string `koanf:"pending" toml:"pending"`
}

// Logging holds logging settings.
type Logging struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Startup lists commands run once the program is loaded.
type Startup struct {
	Commands []string `koanf:"commands" toml:"commands"`
}
