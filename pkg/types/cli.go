package types

type CliOpts struct {
	LogLevel    int
	Quad        bool
	Binary      bool
	Hexadecimal bool
	Decimal     bool
	Masks       []string
	Table       bool
	Summary     bool
	Reverse     bool
	ConfigFile  string
}
