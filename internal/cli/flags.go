package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	TopPreview int

	// Corpus flags
	CMUDictPath string
	Download    bool

	// Frequency flags
	FreqDBPath string
	ImportFreq string
	Locale     string

	// Pipeline flags
	ByType        bool
	MinZipf       float64
	MinFamilySize int
	MaxVariants   int
	Workers       int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:     ".",
		TopPreview:    20,
		Locale:        "en",
		MinZipf:       2.5,
		MinFamilySize: 3,
		MaxVariants:   6,
		Workers:       1,
	}
}
