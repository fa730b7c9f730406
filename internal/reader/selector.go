package reader

import (
	"slices"
	"strings"
)

// Suffixes of configuration-like input files.
var configSuffixes = []string{".yaml", ".yml"}

// Suffixes of vendor data files, in acceptance priority order. The order is
// significant to avoid loading one dataset twice: ".mtex.h5" must be tested
// before ".h5" so such a file qualifies only once.
var dataSuffixes = []string{
	".emd",
	".dm3",
	".dm4",
	".dm5",
	".tiff",
	".tif",
	".txt",
	".zip",
	".nsproj",
	".edaxh5",
	".h5oina",
	".oh5",
	".dream3d",
	".mtex.h5",
	".h5",
	".hdf5",
	".hdr",
}

// UseCaseSelector decides what to do with arbitrary input. Users might
// invoke the converter with no input, too much input, or unsupported
// combinations.
type UseCaseSelector struct {
	// Cfg holds deployment-specific configuration files.
	Cfg []string
	// Eln holds ELN export files.
	Eln []string
	// Cvn holds reference frame convention documents.
	Cvn []string
	// Dat holds vendor data files, deduplicated by suffix priority.
	Dat []string

	// IsValid reports whether the combination of inputs is supported.
	IsValid bool
}

// NewUseCaseSelector sorts the input paths into buckets and checks whether
// the combination is supported: up to two data files and up to three
// configuration-like files.
func NewUseCaseSelector(filePaths []string) *UseCaseSelector {
	s := &UseCaseSelector{}

	bySuffix := make(map[string][]string)
	for _, path := range filePaths {
		lower := strings.ToLower(path)
		for _, suffix := range append(append([]string{}, configSuffixes...), dataSuffixes...) {
			if strings.HasSuffix(lower, suffix) && !slices.Contains(bySuffix[suffix], path) {
				bySuffix[suffix] = append(bySuffix[suffix], path)
			}
		}
	}

	var yml []string
	for _, suffix := range configSuffixes {
		yml = append(yml, bySuffix[suffix]...)
	}

	for _, suffix := range dataSuffixes {
		s.Dat = append(s.Dat, bySuffix[suffix]...)
		if suffix == ".mtex.h5" && len(bySuffix[suffix]) > 0 {
			break
		}
	}

	if len(s.Dat) > 2 || len(yml) > 3 {
		return s
	}

	s.IsValid = true

	for _, entry := range yml {
		switch {
		case strings.HasSuffix(entry, ".oasis.specific.yaml"),
			strings.HasSuffix(entry, ".oasis.specific.yml"):
			s.Cfg = append(s.Cfg, entry)
		case strings.HasSuffix(entry, "conventions.yaml"),
			strings.HasSuffix(entry, "conventions.yml"):
			s.Cvn = append(s.Cvn, entry)
		case strings.HasSuffix(entry, "eln_data.yaml"),
			strings.HasSuffix(entry, "eln_data.yml"):
			s.Eln = append(s.Eln, entry)
		}
	}

	return s
}
